// Package doctor diagnoses a cck installation: config files, hook
// registration in Claude Code's settings, the settings layers cck injects,
// skill manifests and the MCP server config.
//
// Only missing hook registrations can be repaired:
//
//	err := doctor.Run(ctx, params, false) // report only
//	err := doctor.Run(ctx, params, true)  // register missing hooks
//
// Run returns the remaining issues joined into one error so the command
// exits non-zero while anything is wrong.
package doctor

import (
	"context"
	"fmt"

	"github.com/raphi011/cck/internal/output"
	"github.com/raphi011/cck/internal/ui/styles"
)

// Run performs all checks, prints the report and optionally fixes issues.
func Run(ctx context.Context, p Params, fix bool) error {
	out := output.FromContext(ctx)

	report := Check(p)
	printSummary(out, report.Stats)

	if len(report.Issues) == 0 {
		out.Println("\n" + styles.SuccessStyle.Render("✓ No issues found"))
		return nil
	}

	out.Printf("\nFound %d issues:\n", len(report.Issues))
	printIssuesByCategory(out, report.Issues)

	if !fix {
		if report.Fixable() {
			out.Println("\nRun 'cck doctor --fix' to register missing hooks.")
		}
		return report.Err()
	}

	remaining := fixAllIssues(ctx, p, report.Issues)
	return Report{Issues: remaining}.Err()
}

func printSummary(out *output.Printer, s Stats) {
	out.Println()
	line := func(ok bool, format string, a ...any) {
		out.Printf("  %s %s\n", styles.FormatStatus(ok), fmt.Sprintf(format, a...))
	}

	line(s.HooksRegistered == s.HooksTotal, "%d/%d hooks registered", s.HooksRegistered, s.HooksTotal)
	out.Printf("  %s %d settings files readable\n", styles.MutedStyle.Render("•"), s.SettingsFiles)
	out.Printf("  %s %d skills discovered\n", styles.MutedStyle.Render("•"), s.SkillsValid)
	if s.MCPConfig != "" {
		out.Printf("  %s %d MCP servers in %s\n", styles.MutedStyle.Render("•"), s.MCPServers, s.MCPConfig)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	for _, cat := range categoryOrder {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", styles.TitleStyle.Render(categoryNames[cat]))
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
