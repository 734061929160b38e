package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/output"
	"github.com/raphi011/cck/internal/ui/prompt"
)

func newSetupCmd() *cobra.Command {
	var (
		global bool
		binary string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:     "setup",
		Short:   "Register cck's hooks in Claude Code settings",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Register every cck hook in Claude Code's settings.json.

Without flags the project's .claude/settings.json is updated. With --global
the user-level settings (CLAUDE_CONFIG_DIR or ~/.claude) are updated after
confirmation. Hooks that are already registered are left alone, as is
everything else in the file.`,
		Example: `  cck setup                 # .claude/settings.json
  cck setup --global -y     # ~/.claude/settings.json, no prompt
  cck setup --binary cck    # rely on PATH instead of the absolute path`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			path, err := claude.SettingsPath(projectDir(ctx), global)
			if err != nil {
				return err
			}

			if binary == "" {
				if binary, err = os.Executable(); err != nil {
					return fmt.Errorf("locate cck binary: %w (use --binary)", err)
				}
			}

			if global && !yes {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("refusing to modify %s without confirmation (use --yes)", path)
				}
				res, err := prompt.Confirm(fmt.Sprintf("Register cck hooks in %s?", path))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					l.Println("Aborted")
					return nil
				}
			}

			l.Debug("registering hooks", "settings", path, "binary", binary)
			added, err := claude.Register(path, binary)
			if err != nil {
				return err
			}
			if len(added) == 0 {
				out.Printf("All hooks already registered in %s\n", path)
				return nil
			}
			out.Printf("Registered %s in %s\n", strings.Join(added, ", "), path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "Register in the user-level settings.json")
	cmd.Flags().StringVar(&binary, "binary", "", "Command written into the hooks (default: this executable)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
