package policy

import (
	"path"
	"strings"
)

// Decision is the classification of one path.
type Decision struct {
	Path        string      `json:"path"`
	Normalized  string      `json:"normalized"`
	Relative    string      `json:"relative,omitempty"`
	Disposition Disposition `json:"disposition"`
	Pattern     string      `json:"pattern,omitempty"`
}

// Classifier evaluates paths against an ordered rule list.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier from the built-in rules followed by extra
// block and warn patterns. Extra patterns run after the built-ins of their tier
// and, under ClassifyIn, also match the project-relative path.
func NewClassifier(extraBlock, extraWarn []string) (*Classifier, error) {
	rules := DefaultRules()
	for _, extra := range []struct {
		patterns []string
		d        Disposition
	}{{extraBlock, Block}, {extraWarn, Warn}} {
		for _, p := range extra.patterns {
			r, err := NewRule(p, extra.d)
			if err != nil {
				return nil, err
			}
			r.project = true
			rules = append(rules, r)
		}
	}
	return &Classifier{rules: rules}, nil
}

// DefaultClassifier uses only the built-in rules.
func DefaultClassifier() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// WithRules builds a classifier from an explicit rule list.
func WithRules(rules []Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Rules returns the classifier's rules in evaluation order within each tier.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Classify returns the disposition for p. An empty path is allowed.
func (c *Classifier) Classify(p string) Decision {
	return c.ClassifyIn(p, "")
}

// ClassifyIn is Classify for a path edited inside projectDir. When p lies
// under projectDir, extra patterns match either the normalized path or the
// path relative to projectDir, so "^deploy/" works for absolute paths.
// Built-in rules only ever see the normalized path.
func (c *Classifier) ClassifyIn(p, projectDir string) Decision {
	d := Decision{Path: p, Disposition: Allow}
	if strings.TrimSpace(p) == "" {
		return d
	}
	d.Normalized = Normalize(p)
	d.Relative = relativeTo(d.Normalized, projectDir)

	for _, tier := range []Disposition{Block, Warn} {
		for _, r := range c.rules {
			if r.Disposition != tier {
				continue
			}
			if !r.Match(d.Normalized) && !(r.project && d.Relative != "" && r.Match(d.Relative)) {
				continue
			}
			d.Disposition = tier
			d.Pattern = r.Pattern
			return d
		}
	}
	return d
}

// relativeTo returns p relative to root, or "" when root is unset or p is
// not strictly below it. Both are compared in normalized form.
func relativeTo(p, root string) string {
	if strings.TrimSpace(root) == "" {
		return ""
	}
	prefix := strings.TrimSuffix(Normalize(root), "/") + "/"
	rel, ok := strings.CutPrefix(p, prefix)
	if !ok || rel == "" {
		return ""
	}
	return rel
}

// Normalize unifies separators to "/" and resolves "." and ".." segments
// lexically, so traversal like "src/../.env" is matched as ".env".
func Normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	return path.Clean(p)
}
