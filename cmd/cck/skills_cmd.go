package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/hooks"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/manifest"
	"github.com/raphi011/cck/internal/output"
	"github.com/raphi011/cck/internal/ui/picker"
	"github.com/raphi011/cck/internal/ui/static"
)

func newSkillsCmd() *cobra.Command {
	var (
		interactive bool
		copyPath    bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:               "skills [name]",
		Short:             "List skills the skills hook would inject",
		GroupID:           GroupInspect,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSkillNames,
		Long: `List the skills discovered in the project's skills directory.

With a name, print the path of that skill's SKILL.md. With -i, pick a
skill interactively. Manifests without a name or description are not
listed; run 'cck doctor' to see why.`,
		Example: `  cck skills               # Table of skills
  cck skills pdf           # Path of the pdf skill
  cck skills -i --copy     # Pick a skill, copy its path
  $EDITOR "$(cck skills pdf)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)
			dir := projectDir(ctx)

			entries := hooks.Skills(ctx, dir)
			l.Debug("scanned skills", "dir", dir, "count", len(entries))

			var (
				selected manifest.Entry
				ok       bool
			)
			switch {
			case interactive:
				res, err := picker.Run(entries)
				if err != nil {
					return fmt.Errorf("skill picker: %w", err)
				}
				if res.Cancelled {
					return nil
				}
				selected, ok = res.Entry, true
			case len(args) == 1:
				selected, ok = manifest.Find(entries, args[0])
				if !ok {
					return unknownSkillError(entries, args[0])
				}
			}

			if ok {
				path := manifest.AbsPath(selected, dir)
				if copyPath {
					copyToClipboard(ctx, path)
				}
				out.Println(path)
				return nil
			}

			if jsonOutput {
				if entries == nil {
					entries = []manifest.Entry{}
				}
				return out.JSON(entries)
			}
			if len(entries) == 0 {
				l.Println("No skills found")
				return nil
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = static.SkillRow(e, dir)
			}
			out.Printf("%s", static.RenderTable(static.SkillHeaders, rows))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick a skill with fuzzy search")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the selected skill's path to clipboard")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.MarkFlagsMutuallyExclusive("interactive", "json")

	return cmd
}

func unknownSkillError(entries []manifest.Entry, name string) error {
	if suggestions := manifest.Suggest(entries, name, 3); len(suggestions) > 0 {
		return fmt.Errorf("skill %q not found, did you mean: %s?", name, strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("skill %q not found", name)
}
