// Package config handles loading and validation of cck configuration.
//
// This is cck's own configuration, not the assistant's settings: it tunes the
// file protection rules, where skills are discovered, and how developer
// commands render. Hooks never fail because of it; an invalid file falls
// back to defaults with a warning.
//
// # Configuration Sources (highest priority first)
//
//   - <project>/.claude/cck.toml: per-project overrides
//   - CCK_CONFIG env var: path of the global config file
//   - ~/.config/cck/config.toml: global config
//   - Default values
//
// # Key Settings
//
//	[protection]
//	block = ['\.tfstate$']   # extra BLOCK patterns, after the built-ins
//	warn = ['^infra/']       # extra WARN patterns
//
//	[skills]
//	dir = ".claude/skills"   # relative to the project root
//
//	[ui]
//	theme = "default"        # default, dracula or nord
//
// Protection patterns from the local file are appended to the global ones;
// scalar settings replace them.
package config
