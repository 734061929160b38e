package settings

import (
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultLanguage is used for any language field that is not set.
const DefaultLanguage = "en"

// Language holds the language codes for each kind of output.
type Language struct {
	Think    string
	Response string
	Document string
}

// LanguageOf reads the "language" object. Each field defaults to "en"
// on its own.
func LanguageOf(doc *Document) Language {
	lang := doc.Doc("language")
	return Language{
		Think:    stringOr(lang, "think", DefaultLanguage),
		Response: stringOr(lang, "response", DefaultLanguage),
		Document: stringOr(lang, "document", DefaultLanguage),
	}
}

func stringOr(d *Document, key, def string) string {
	v, ok := d.Value(key)
	if !ok || v.Type == gjson.Null {
		return def
	}
	return v.String()
}

// AgentLimit caps the number of concurrent instances of one agent type.
type AgentLimit struct {
	Agent string
	Max   string
}

// WorkflowOf returns workflow.maxInstances as ordered pairs, in the order the
// settings files list them. Values are kept as written.
func WorkflowOf(doc *Document) []AgentLimit {
	limits := doc.Doc("workflow").Doc("maxInstances")
	var out []AgentLimit
	for _, agent := range limits.Keys() {
		v, _ := limits.Value(agent)
		out = append(out, AgentLimit{Agent: agent, Max: v.String()})
	}
	return out
}

// ResponseLanguage returns the first non-blank responseLanguage, checking
// local before project.
func ResponseLanguage(project, local *Document) string {
	for _, d := range []*Document{local, project} {
		if s := strings.TrimSpace(d.String("responseLanguage")); s != "" {
			return s
		}
	}
	return ""
}
