package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// languageNames maps ISO codes and lower-case English names to display names.
var languageNames = map[string]string{
	"vi": "Vietnamese",
	"en": "English",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"fr": "French",
	"de": "German",
	"es": "Spanish",
	"pt": "Portuguese",
	"ru": "Russian",
	"ar": "Arabic",
	"th": "Thai",
	"id": "Indonesian",
	"nl": "Dutch",
	"it": "Italian",
	"pl": "Polish",
	"tr": "Turkish",
	"hi": "Hindi",

	"vietnamese": "Vietnamese",
	"english":    "English",
	"japanese":   "Japanese",
	"korean":     "Korean",
	"chinese":    "Chinese",
	"french":     "French",
	"german":     "German",
	"spanish":    "Spanish",
	"portuguese": "Portuguese",
	"russian":    "Russian",
	"arabic":     "Arabic",
	"thai":       "Thai",
	"indonesian": "Indonesian",
	"dutch":      "Dutch",
	"italian":    "Italian",
	"polish":     "Polish",
	"turkish":    "Turkish",
	"hindi":      "Hindi",
}

// NormalizeLanguage maps a configured responseLanguage to a display name.
// Unknown values are title-cased; blank input returns "".
func NormalizeLanguage(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if name, ok := languageNames[strings.ToLower(s)]; ok {
		return name
	}
	return cases.Title(language.Und).String(s)
}

// ResponseLanguage renders the rules block for a configured response
// language. English needs no instructions and renders "".
func ResponseLanguage(raw string) string {
	name := NormalizeLanguage(raw)
	if name == "" || strings.EqualFold(name, "english") {
		return ""
	}
	return Language(name)
}

// Language renders the response-language rules for an already normalized name.
func Language(name string) string {
	lines := []string{
		"# Response Language Configuration",
		"",
		"**Configured Language**: " + name,
		"",
		"## Language Rules",
		"",
		"- Respond to the user in **" + name + "**",
		"- Keep technical terms in English (e.g., API, function, variable)",
		"- Keep code comments in English",
		"- Keep file paths and commands in English",
		"- Only translate explanations, discussions, and descriptions",
		"",
		"## Example",
		"",
		"When explaining code:",
		`- Good: "[` + name + " explanation] `functionName` [" + name + ` description]"`,
		"- Bad: Translating function names or technical terms",
	}
	return strings.Join(lines, "\n")
}
