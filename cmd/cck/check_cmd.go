package main

import (
	"cmp"
	"slices"

	"github.com/spf13/cobra"

	"github.com/raphi011/cck/internal/hooks"
	"github.com/raphi011/cck/internal/output"
	"github.com/raphi011/cck/internal/policy"
	"github.com/raphi011/cck/internal/ui/static"
	"github.com/raphi011/cck/internal/ui/styles"
)

func newCheckCmd() *cobra.Command {
	var (
		jsonOutput bool
		showRules  bool
	)

	cmd := &cobra.Command{
		Use:     "check <path>...",
		Short:   "Classify paths like the file-protection hook",
		GroupID: GroupInspect,
		Args: func(cmd *cobra.Command, args []string) error {
			if showRules {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		Long: `Classify paths as BLOCK, WARN or ALLOW using the built-in rules plus
the protection patterns of the global and project config.

Nothing is read from stdin and nothing is blocked; this only reports.`,
		Example: `  cck check .env src/main.go Dockerfile
  cck check --json secrets/api.key
  cck check --rules        # list the rules in evaluation order`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			dir := projectDir(ctx)
			c, err := hooks.Classifier(ctx, dir)
			if err != nil {
				return err
			}

			if showRules {
				return printRules(out, c.Rules(), jsonOutput)
			}

			decisions := make([]policy.Decision, len(args))
			for i, p := range args {
				decisions[i] = c.ClassifyIn(p, dir)
			}

			if jsonOutput {
				return out.JSON(decisions)
			}

			rows := make([][]string, len(decisions))
			for i, d := range decisions {
				rows[i] = static.DecisionRow(d)
			}
			out.Printf("%s", static.RenderTable(static.DecisionHeaders, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&showRules, "rules", false, "List the effective rules instead of classifying paths")

	return cmd
}

type ruleJSON struct {
	Pattern     string             `json:"pattern"`
	Disposition policy.Disposition `json:"disposition"`
}

// printRules lists rules in evaluation order: every BLOCK rule, then every
// WARN rule.
func printRules(out *output.Printer, rules []policy.Rule, jsonOutput bool) error {
	slices.SortStableFunc(rules, func(a, b policy.Rule) int {
		return cmp.Compare(b.Disposition, a.Disposition)
	})

	if jsonOutput {
		list := make([]ruleJSON, len(rules))
		for i, r := range rules {
			list[i] = ruleJSON{Pattern: r.Pattern, Disposition: r.Disposition}
		}
		return out.JSON(list)
	}

	rows := make([][]string, len(rules))
	for i, r := range rules {
		rows[i] = []string{styles.FormatDisposition(r.Disposition), r.Pattern}
	}
	out.Printf("%s", static.RenderTable([]string{"DISPOSITION", "PATTERN"}, rows))
	return nil
}
