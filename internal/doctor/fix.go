package doctor

import (
	"context"
	"strings"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/output"
	"github.com/raphi011/cck/internal/ui/styles"
)

// fixAllIssues applies fixes and returns the issues still open.
func fixAllIssues(ctx context.Context, p Params, issues []Issue) []Issue {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	var remaining []Issue
	var register []Issue
	for _, issue := range issues {
		if issue.FixAction == FixRegister {
			register = append(register, issue)
			continue
		}
		remaining = append(remaining, issue)
	}
	if len(register) == 0 {
		return remaining
	}

	out.Println()
	if len(p.SettingsPaths) == 0 || p.Binary == "" {
		out.Printf("  %s cannot register hooks: no settings file or binary\n", styles.FormatStatus(false))
		return append(remaining, register...)
	}

	target := p.SettingsPaths[0]
	l.Debug("registering hooks", "settings", target, "binary", p.Binary)
	added, err := claude.Register(target, p.Binary)
	if err != nil {
		out.Printf("  %s failed to register hooks: %v\n", styles.FormatStatus(false), err)
		return append(remaining, register...)
	}
	out.Printf("  %s Registered %s in %s\n", styles.FormatStatus(true), strings.Join(added, ", "), target)
	return remaining
}
