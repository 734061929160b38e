package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/hooks"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/protocol"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "hook <name>",
		Short:     "Run a Claude Code hook",
		GroupID:   GroupHooks,
		Args:      cobra.ExactArgs(1),
		ValidArgs: hooks.Names(),
		Long: `Run a Claude Code hook. The event payload is read as JSON from stdin.

Hooks:
  file-protection  PreToolUse: block or warn on edits to sensitive files
  inject-settings  UserPromptSubmit: inject .claude/cck.json settings
  language         SessionStart: inject response-language rules
  mcp              SessionStart: inject declared MCP servers
  skills           SessionStart: inject available skills

Exit codes: 0 allow or context, 1 internal error, 2 blocked (file-protection only).
Set CCK_DEBUG=1 to trace a hook on stderr.`,
		Example: `  echo '{"tool_input":{"file_path":".env"}}' | cck hook file-protection
  cck setup   # register all hooks in .claude/settings.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			h, err := hooks.Lookup(args[0])
			if err != nil {
				return err
			}

			done := log.FromContext(ctx).Step("hook " + h.Name)
			code := protocol.Run(ctx, protocol.Streams{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			}, h)
			done()

			if code != protocol.ExitOK {
				return &exitCodeError{code: code}
			}
			return nil
		},
	}

	return cmd
}
