package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/raphi011/cck/internal/policy"
)

// ValidThemes are the accepted ui.theme values.
var ValidThemes = []string{"default", "dracula", "nord", "none"}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

func validateProtection(p ProtectionConfig) error {
	if err := policy.ValidatePatterns(p.Block, "protection.block"); err != nil {
		return err
	}
	return policy.ValidatePatterns(p.Warn, "protection.warn")
}

// validateSkillsDir rejects relative paths that climb out of the project.
func validateSkillsDir(dir string) error {
	if dir == "" || strings.HasPrefix(dir, "/") {
		return nil
	}
	for _, part := range strings.Split(strings.ReplaceAll(dir, `\`, "/"), "/") {
		if part == ".." {
			return fmt.Errorf("invalid skills.dir %q: must stay inside the project", dir)
		}
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
