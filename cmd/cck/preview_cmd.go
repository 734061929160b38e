package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/hooks"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/output"
)

func newPreviewCmd() *cobra.Command {
	var copyText bool

	cmd := &cobra.Command{
		Use:       "preview <hook>",
		Short:     "Show the context a hook would inject",
		GroupID:   GroupInspect,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{hooks.NameInjectSettings, hooks.NameLanguage, hooks.NameMCP, hooks.NameSkills},
		Long: `Render the context an advisory hook would inject for the current project,
without reading an event from stdin.`,
		Example: `  cck preview skills
  cck preview inject-settings --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			render, err := hooks.ContextFor(args[0])
			if err != nil {
				return err
			}

			text := render(ctx, projectDir(ctx))
			if text == "" {
				log.FromContext(ctx).Printf("%s hook would inject nothing\n", args[0])
				return nil
			}
			if copyText {
				copyToClipboard(ctx, text)
			}
			out.Println(text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the rendered context to clipboard")

	return cmd
}
