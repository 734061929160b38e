package manifest

import (
	"regexp"
	"strings"
)

const fence = "---"

var keyLine = regexp.MustCompile(`^(\w+):\s*(.*)`)

// Frontmatter holds the flat key/value pairs of a manifest header.
type Frontmatter map[string]string

// ParseFrontmatter extracts the header of a manifest: the lines between an
// opening "---" on the first line and the next "---" line. Content without a
// complete header yields nil.
//
// Only a flat subset of YAML is understood. "key: value" starts a key, a
// value of ">", "|", ">-" or "|-" starts a block scalar, and lines indented by
// two spaces continue the current key. Continuations are joined with single
// spaces. Anything else, including nested maps and lists, is ignored.
func ParseFrontmatter(content string) Frontmatter {
	block, ok := headerLines(content)
	if !ok {
		return nil
	}

	fm := Frontmatter{}
	var (
		key   string
		parts []string
	)
	flush := func() {
		if key != "" {
			fm[key] = strings.TrimSpace(strings.Join(parts, " "))
		}
	}

	for _, line := range block {
		if m := keyLine.FindStringSubmatch(line); m != nil {
			flush()
			key = m[1]
			switch v := strings.TrimSpace(m[2]); v {
			case ">", "|", ">-", "|-":
				parts = nil
			default:
				parts = []string{v}
			}
			continue
		}
		if key != "" && strings.HasPrefix(line, "  ") {
			parts = append(parts, strings.TrimSpace(line))
		}
	}
	flush()
	return fm
}

// headerLines returns the lines between the opening and closing fences.
func headerLines(content string) ([]string, bool) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != fence {
		return nil, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == fence {
			return lines[1:i], true
		}
	}
	return nil, false
}
