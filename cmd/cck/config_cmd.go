package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/config"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/output"
	"github.com/raphi011/cck/internal/ui/static"
	"github.com/raphi011/cck/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage cck configuration.

Global config: ~/.config/cck/config.toml (or $CCK_CONFIG)
Local config:  .claude/cck.toml (in the project root)`,
		Example: `  cck config init          # Create default global config
  cck config init --local  # Create project config
  cck config show          # Show effective config
  cck config hooks         # List hooks and where they are registered`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigHooksCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config. With --local, creates
.claude/cck.toml in the project root.`,
		Example: `  cck config init           # Create global config
  cck config init --local   # Create project config
  cck config init -f        # Overwrite existing config
  cck config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if stdout {
				content := config.DefaultConfig()
				if local {
					content = config.DefaultLocalConfig()
				}
				out.Printf("%s", content)
				return nil
			}

			if local {
				path, err := config.InitLocal(projectDir(ctx), force)
				if err != nil {
					return err
				}
				out.Printf("Created local config: %s\n", path)
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create .claude/cck.toml instead of global config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

The project's .claude/cck.toml is merged over the global config and local
values are annotated.`,
		Example: `  cck config show
  cck config show --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			dir := projectDir(ctx)

			local, err := config.LoadLocal(dir)
			if err != nil {
				l.Warnf("%v (using global config)", err)
			}
			effCfg := config.MergeLocal(cfg, local)

			if jsonOutput {
				return out.JSON(effCfg)
			}

			globalPath, err := config.Path()
			if err != nil {
				globalPath = "(unknown)"
			}
			out.Printf("Global config: %s\n", globalPath)
			if local != nil {
				out.Printf("Local config:  %s\n", config.LocalPath(dir))
			} else {
				out.Printf("Local config:  (none)\n")
			}
			out.Println()

			source := func(isLocal bool) string {
				if isLocal {
					return styles.MutedStyle.Render(" (local)")
				}
				return ""
			}

			out.Printf("protection.block: %s%s\n", patternList(effCfg.Protection.Block), source(local != nil && len(local.Protection.Block) > 0))
			out.Printf("protection.warn: %s%s\n", patternList(effCfg.Protection.Warn), source(local != nil && len(local.Protection.Warn) > 0))
			out.Printf("skills.dir: %s%s\n", effCfg.Skills.Dir, source(local != nil && local.Skills.Dir != ""))
			out.Printf("ui.theme: %s%s\n", effCfg.UI.Theme, source(local != nil && local.UI.Theme != ""))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func patternList(patterns []string) string {
	if len(patterns) == 0 {
		return "(built-in only)"
	}
	return strings.Join(patterns, ", ")
}

func newConfigHooksCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "List hooks and where they are registered",
		Args:  cobra.NoArgs,
		Example: `  cck config hooks
  cck config hooks --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			dir := projectDir(ctx)

			type scope struct {
				label      string
				registered map[string]bool
			}
			var scopes []scope
			for _, global := range []bool{false, true} {
				label := "project"
				if global {
					label = "global"
				}
				path, err := claude.SettingsPath(dir, global)
				if err != nil {
					l.Debug("skipping settings", "scope", label, "err", err)
					continue
				}
				reg, err := claude.Registered(path)
				if err != nil {
					l.Warnf("%v", err)
					continue
				}
				scopes = append(scopes, scope{label: label, registered: reg})
			}

			type hookJSON struct {
				Name       string   `json:"name"`
				Event      string   `json:"event"`
				Matcher    string   `json:"matcher,omitempty"`
				Registered []string `json:"registered"`
			}

			result := make([]hookJSON, 0, len(claude.Hooks))
			for _, h := range claude.Hooks {
				entry := hookJSON{Name: h.Name, Event: h.Event, Matcher: h.Matcher, Registered: []string{}}
				for _, s := range scopes {
					if s.registered[h.Name] {
						entry.Registered = append(entry.Registered, s.label)
					}
				}
				result = append(result, entry)
			}

			if jsonOutput {
				return out.JSON(result)
			}

			rows := make([][]string, len(result))
			for i, h := range result {
				where := styles.FormatStatus(false) + " not registered"
				if len(h.Registered) > 0 {
					where = styles.FormatStatus(true) + " " + strings.Join(h.Registered, ", ")
				}
				event := h.Event
				if h.Matcher != "" {
					event += " (" + h.Matcher + ")"
				}
				rows[i] = []string{styles.AccentStyle.Render(h.Name), event, where}
			}
			out.Printf("%s", static.RenderTable([]string{"HOOK", "EVENT", "REGISTERED"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
