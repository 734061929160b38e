// Package policy classifies file paths targeted by edit tools as blocked,
// warned or allowed.
//
// Classification is driven by an ordered list of [Rule] values. Every BLOCK
// rule is tried before any WARN rule, and the first match within a tier wins.
// Patterns are case-insensitive regular expressions searched anywhere in the
// normalized path, so a trailing "/" in a pattern means "this directory
// anywhere in the path".
package policy

import (
	"fmt"
	"regexp"
	"strings"
)

// Disposition is the verdict for a path.
type Disposition int

const (
	Allow Disposition = iota
	Warn
	Block
)

func (d Disposition) String() string {
	switch d {
	case Block:
		return "BLOCK"
	case Warn:
		return "WARN"
	default:
		return "ALLOW"
	}
}

// MarshalText renders the disposition as its upper-case name.
func (d Disposition) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Rule pairs a pattern with the disposition it triggers.
type Rule struct {
	Pattern     string
	Disposition Disposition
	re          *regexp.Regexp
	// project rules also see the path relative to the project root.
	project bool
}

// NewRule compiles a case-insensitive rule.
func NewRule(pattern string, d Disposition) (Rule, error) {
	if d != Block && d != Warn {
		return Rule{}, fmt.Errorf("rule %q: disposition must be BLOCK or WARN, got %s", pattern, d)
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", pattern, err)
	}
	return Rule{Pattern: pattern, Disposition: d, re: re}, nil
}

func mustRule(pattern string, d Disposition) Rule {
	r, err := NewRule(pattern, d)
	if err != nil {
		panic(err)
	}
	return r
}

// Match reports whether the rule's pattern occurs in the normalized path.
func (r Rule) Match(normalized string) bool {
	return r.re != nil && r.re.MatchString(normalized)
}

// blockPatterns are files that must never be edited by the assistant.
var blockPatterns = []string{
	// Environment and secrets
	`\.env$`,
	`\.env\.[^/]+$`,
	`\.env\.local$`,
	`secrets/`,
	`credentials/`,
	`\.credentials`,

	// Lock files
	`package-lock\.json$`,
	`yarn\.lock$`,
	`pnpm-lock\.yaml$`,
	`Gemfile\.lock$`,
	`poetry\.lock$`,
	`Cargo\.lock$`,
	`composer\.lock$`,

	// Cryptographic material
	`\.pem$`,
	`\.key$`,
	`\.crt$`,
	`\.p12$`,
	`\.pfx$`,
	`id_rsa`,
	`id_ed25519`,
	`id_ecdsa`,

	// Git internals
	`\.git/`,
	`\.git$`,

	// Editor settings
	`\.idea/`,
	`\.vscode/settings\.json$`,
}

// warnPatterns are files worth a second look but not blocked.
var warnPatterns = []string{
	`\.github/workflows/`,
	`\.gitlab-ci\.yml$`,
	`Dockerfile$`,
	`docker-compose\.ya?ml$`,
	`Makefile$`,
	`webpack\.config\.`,
	`vite\.config\.`,
	`tsconfig\.json$`,
	`package\.json$`,
}

var defaultRules = buildDefaultRules()

func buildDefaultRules() []Rule {
	rules := make([]Rule, 0, len(blockPatterns)+len(warnPatterns))
	for _, p := range blockPatterns {
		rules = append(rules, mustRule(p, Block))
	}
	for _, p := range warnPatterns {
		rules = append(rules, mustRule(p, Warn))
	}
	return rules
}

// DefaultRules returns a copy of the built-in rule list.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}

// ValidatePatterns checks that every pattern compiles.
// field names the config key in error messages, e.g. "protection.block".
func ValidatePatterns(patterns []string, field string) error {
	for i, p := range patterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("invalid %s[%d]: pattern is empty", field, i)
		}
		if _, err := regexp.Compile("(?i)" + p); err != nil {
			return fmt.Errorf("invalid %s[%d] %q: %w", field, i, p, err)
		}
	}
	return nil
}
