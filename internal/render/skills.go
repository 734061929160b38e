package render

import (
	"strings"

	"github.com/raphi011/cck/internal/manifest"
)

// skillHints is the fixed guide to well-known skill names.
var skillHints = []string{
	"- **frontend-design**: UI work, web components, styling, landing pages",
	"- **testing**: Writing tests, TDD, test strategies",
	"- **debugging**: Bug investigation, root cause analysis",
	"- **security-review**: Security audits, vulnerability checks",
	"- **refactoring**: Code improvement without behavior change",
	"- **architecture**: System design, patterns, component structure",
	"- **code-quality**: Best practices, clean code",
	"- **performance**: Optimization, profiling",
	"- **documentation**: Writing docs, READMEs, API docs",
	"- **git-workflow**: Commits, branches, PRs",
}

// Skills renders the skill auto-loading protocol for the given entries.
func Skills(entries []manifest.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	lines := []string{
		"# Skill Auto-Loading Protocol",
		"",
		"## Available Skills",
		"",
		"Skills discovered: " + strings.Join(names, ", "),
		"",
		"## How to Load Skills",
		"",
		"When a task matches a skill's purpose, invoke it using the **Skill tool**:",
		"",
		"```",
		`Skill(skill="<skill-name>")`,
		"```",
		"",
		"## Skill Descriptions",
		"",
	}
	for _, e := range entries {
		lines = append(lines, "- **"+e.Name+"**: "+e.Description)
	}
	lines = append(lines, "", "## When to Use Skills", "")
	lines = append(lines, skillHints...)
	lines = append(lines,
		"",
		"**IMPORTANT**: Use the Skill tool to invoke skills, not the Read tool.",
	)
	return strings.Join(lines, "\n")
}
