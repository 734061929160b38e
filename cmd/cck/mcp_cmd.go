package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/mcp"
	"github.com/raphi011/cck/internal/output"
	"github.com/raphi011/cck/internal/ui/static"
)

func newMCPCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "mcp",
		Short:   "List MCP servers the mcp hook would inject",
		GroupID: GroupInspect,
		Args:    cobra.NoArgs,
		Long: `List the MCP servers declared in .mcp.json (or .claude/.mcp.json).

Unlike the hook, a malformed config is reported as an error here.`,
		Example: `  cck mcp
  cck mcp --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			path, ok := mcp.FindConfig(projectDir(ctx))
			var servers []mcp.Server
			if ok {
				var err error
				if servers, err = mcp.LoadFile(path); err != nil {
					return err
				}
				l.Debug("loaded mcp config", "path", path, "servers", len(servers))
			}

			if jsonOutput {
				if servers == nil {
					servers = []mcp.Server{}
				}
				return out.JSON(servers)
			}
			if !ok {
				l.Printf("No %s found\n", mcp.ConfigName)
				return nil
			}
			if len(servers) == 0 {
				l.Printf("No servers declared in %s\n", path)
				return nil
			}

			rows := make([][]string, len(servers))
			for i, s := range servers {
				rows[i] = static.ServerRow(s)
			}
			out.Printf("%s", static.RenderTable(static.ServerHeaders, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
