package config

// MergeLocal merges a per-project config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	// Protection patterns (append with dedup)
	if len(local.Protection.Block) > 0 {
		merged.Protection.Block = appendUnique(global.Protection.Block, local.Protection.Block)
	}
	if len(local.Protection.Warn) > 0 {
		merged.Protection.Warn = appendUnique(global.Protection.Warn, local.Protection.Warn)
	}

	if local.Skills.Dir != "" {
		merged.Skills.Dir = local.Skills.Dir
	}
	if local.UI.Theme != "" {
		merged.UI.Theme = local.UI.Theme
	}

	return &merged
}

// appendUnique appends items from extra to base, skipping duplicates.
// Returns a new slice (never mutates base).
func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}

	result := make([]string, len(base))
	copy(result, base)

	for _, v := range extra {
		if !seen[v] {
			result = append(result, v)
			seen[v] = true
		}
	}

	return result
}
