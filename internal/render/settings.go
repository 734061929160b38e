// Package render turns resolved settings, skills and MCP servers into the
// Markdown context injected into the assistant's conversation.
//
// Every function is pure: the same input always renders the same bytes, items
// keep the order they were given in, and empty input renders "".
package render

import (
	"fmt"
	"strings"

	"github.com/raphi011/cck/internal/settings"
)

// languageDisplay maps the codes used in cck.json to display names.
var languageDisplay = map[string]string{
	"vi": "Vietnamese (Tiếng Việt)",
	"en": "English",
	"ja": "Japanese (日本語)",
	"ko": "Korean (한국어)",
	"zh": "Chinese (中文)",
	"fr": "French (Français)",
	"de": "German (Deutsch)",
	"es": "Spanish (Español)",
	"pt": "Portuguese (Português)",
	"ru": "Russian (Русский)",
	"it": "Italian (Italiano)",
	"th": "Thai (ไทย)",
}

// DisplayLanguage returns the display name for a language code, or the code
// itself when unknown.
func DisplayLanguage(code string) string {
	if name, ok := languageDisplay[code]; ok {
		return name
	}
	return code
}

// Settings renders the mandatory user settings block. A nil or empty
// document renders "".
func Settings(doc *settings.Document) string {
	if doc.Len() == 0 {
		return ""
	}

	lang := settings.LanguageOf(doc)
	lines := []string{
		"## CCK USER SETTINGS (MANDATORY)",
		"",
		"**Language Settings**:",
		"- Think/Reasoning: " + DisplayLanguage(lang.Think),
		"- Response to user: " + DisplayLanguage(lang.Response),
		"- Documents (.reports, .plans, comments, commits): " + DisplayLanguage(lang.Document),
		"",
	}

	if limits := settings.WorkflowOf(doc); len(limits) > 0 {
		lines = append(lines, "**Workflow**: Max agents per type:")
		for _, l := range limits {
			lines = append(lines, fmt.Sprintf("  - %s: %s", l.Agent, l.Max))
		}
		lines = append(lines,
			"  - CRITICAL: Wait for ALL agents to complete before next phase",
			"",
		)
	}

	return strings.Join(lines, "\n")
}
