package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/output"
	"github.com/raphi011/cck/internal/settings"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Short:   "Inspect layered project settings",
		GroupID: GroupInspect,
		Long: `Inspect the layered settings under .claude.

cck.json is merged with cck.local.json (local wins, objects merge
recursively, lists are replaced). With --host the same merge is applied
to Claude Code's settings.json and settings.local.json.`,
	}

	cmd.AddCommand(newSettingsShowCmd())

	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	var host bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective merged settings as JSON",
		Args:  cobra.NoArgs,
		Example: `  cck settings show          # .claude/cck.json + cck.local.json
  cck settings show --host   # .claude/settings.json + settings.local.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			layers := settings.CCKFiles
			if host {
				layers = settings.HostFiles
			}
			dir := claude.ClaudeDir(projectDir(ctx))

			for _, p := range settings.Check(dir, layers) {
				l.Warnf("ignoring %s: %v", p.Path, p.Err)
			}

			doc, ok := settings.Resolve(dir, layers)
			if !ok {
				l.Printf("No settings in %s (%s, %s)\n", dir, layers.Project, layers.Local)
				out.Block("{}")
				return nil
			}
			out.Block(string(doc.Indent()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&host, "host", false, "Show Claude Code's settings.json layers instead")

	return cmd
}
