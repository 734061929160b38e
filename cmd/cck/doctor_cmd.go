package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/config"
	"github.com/raphi011/cck/internal/doctor"
	"github.com/raphi011/cck/internal/hooks"
	"github.com/raphi011/cck/internal/log"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose the cck installation",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose the cck installation for the current project.

Checks:
- Global and project config files are valid
- Every hook is registered in the project or user settings.json
- Settings layers under .claude parse as JSON objects
- Skill manifests have a name and description
- The MCP server config parses

Only missing hook registrations can be fixed.`,
		Example: `  cck doctor          # Check for issues
  cck doctor --fix    # Register missing hooks in .claude/settings.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			dir := projectDir(ctx)

			p := doctor.Params{
				ProjectDir: dir,
				Config:     hooks.EffectiveConfig(ctx, dir),
			}
			if path, err := config.Path(); err == nil {
				p.ConfigPath = path
			}
			for _, global := range []bool{false, true} {
				path, err := claude.SettingsPath(dir, global)
				if err != nil {
					l.Debug("skipping settings", "global", global, "err", err)
					continue
				}
				p.SettingsPaths = append(p.SettingsPaths, path)
			}
			if exe, err := os.Executable(); err == nil {
				p.Binary = exe
			}

			return doctor.Run(ctx, p, fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Register missing hooks")

	return cmd
}
