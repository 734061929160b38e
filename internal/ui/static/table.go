// Package static renders non-interactive terminal output for cck's developer
// commands: tables of classified paths, discovered skills and MCP servers.
package static

import (
	"net/url"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/cck/internal/manifest"
	"github.com/raphi011/cck/internal/mcp"
	"github.com/raphi011/cck/internal/policy"
	"github.com/raphi011/cck/internal/ui/styles"
)

// DescriptionWidth caps description cells so tables stay readable in
// narrow terminals.
const DescriptionWidth = 60

// RenderTable creates a formatted table with proper column alignment.
// Column widths follow the content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// DecisionHeaders are the columns produced by DecisionRow.
var DecisionHeaders = []string{"DISPOSITION", "PATH", "PATTERN"}

// DecisionRow builds one row of `cck check` output.
func DecisionRow(d policy.Decision) []string {
	pattern := d.Pattern
	if pattern == "" {
		pattern = styles.MutedStyle.Render("-")
	}
	return []string{styles.FormatDisposition(d.Disposition), d.Normalized, pattern}
}

// SkillHeaders are the columns produced by SkillRow.
var SkillHeaders = []string{"NAME", "DESCRIPTION", "PATH"}

// SkillRow builds one row of `cck skills` output. root is the project
// directory; when set, the path links to the manifest on disk.
func SkillRow(e manifest.Entry, root string) []string {
	return []string{
		styles.AccentStyle.Render(e.Name),
		Truncate(e.Description, DescriptionWidth),
		skillLink(e, root),
	}
}

// ServerHeaders are the columns produced by ServerRow.
var ServerHeaders = []string{"NAME", "INVOCATION"}

// ServerRow builds one row of `cck mcp` output.
func ServerRow(s mcp.Server) []string {
	return []string{styles.AccentStyle.Render(s.Name), s.Invocation()}
}

// Truncate shortens s to width cells, ending in "…" when cut.
func Truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

func skillLink(e manifest.Entry, root string) string {
	if root == "" {
		return styles.MutedStyle.Render(e.Path)
	}
	return FileLink(e.Path, manifest.AbsPath(e, root))
}

// FileLink renders text as an OSC 8 hyperlink to the file at abs.
// Terminals without hyperlink support show the plain text.
func FileLink(text, abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return ansi.SetHyperlink(u.String()) + styles.MutedStyle.Render(text) + ansi.ResetHyperlink()
}
