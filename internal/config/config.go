package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/cck/internal/storage"
)

// EnvConfigPath overrides the location of the global config file.
const EnvConfigPath = "CCK_CONFIG"

// DefaultSkillsDir is where skills live relative to the project root.
const DefaultSkillsDir = ".claude/skills"

// ProtectionConfig extends the built-in file protection rules.
type ProtectionConfig struct {
	Block []string `toml:"block" json:"block"`
	Warn  []string `toml:"warn" json:"warn"`
}

// SkillsConfig configures skill discovery.
type SkillsConfig struct {
	Dir string `toml:"dir" json:"dir"`
}

// UIConfig configures developer-facing output.
type UIConfig struct {
	Theme string `toml:"theme" json:"theme"`
}

// Config holds the cck configuration
type Config struct {
	Protection ProtectionConfig `toml:"protection" json:"protection"`
	Skills     SkillsConfig     `toml:"skills" json:"skills"`
	UI         UIConfig         `toml:"ui" json:"ui"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Skills: SkillsConfig{Dir: DefaultSkillsDir},
		UI:     UIConfig{Theme: "default"},
	}
}

// Path returns the global config file location.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cck", "config.toml"), nil
}

// Load reads the global config.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a global config from path. See Load.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	if cfg.Skills.Dir == "" {
		cfg.Skills.Dir = DefaultSkillsDir
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = "default"
	}
	return cfg, nil
}

// Validate checks enum values and protection patterns.
func (c *Config) Validate() error {
	if err := validateEnum(c.UI.Theme, "ui.theme", ValidThemes); err != nil {
		return err
	}
	if err := validateSkillsDir(c.Skills.Dir); err != nil {
		return err
	}
	return validateProtection(c.Protection)
}

// SkillsPath resolves the skills directory against projectDir.
func (c *Config) SkillsPath(projectDir string) string {
	dir := c.Skills.Dir
	if dir == "" {
		dir = DefaultSkillsDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(projectDir, filepath.FromSlash(dir))
}

// SkillsRelBase is the skills directory as shown in manifest paths.
func (c *Config) SkillsRelBase() string {
	if c.Skills.Dir == "" {
		return DefaultSkillsDir
	}
	return filepath.ToSlash(c.Skills.Dir)
}

const defaultConfig = `# cck configuration

# File protection - patterns are case-insensitive regular expressions searched
# anywhere in the normalized path (forward slashes, ".." resolved).
# Extra patterns run after the built-in rules of the same tier; BLOCK always
# wins over WARN. For files inside the project they are also matched against
# the project-relative path, so '^infra/' anchors at the project root.
#
# [protection]
# block = ['\.tfstate$', 'vault/']
# warn = ['^infra/', '\.sql$']

# Skill discovery - directory of <name>/SKILL.md manifests,
# relative to the project root
[skills]
dir = ".claude/skills"

# Developer command output
# Available themes: "default", "dracula", "nord", "none" (no colors)
[ui]
theme = "default"
`

// DefaultConfig returns the default global configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, writeTemplate(path, defaultConfig, force)
}

func writeTemplate(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}
	return storage.WriteFile(path, []byte(content), 0o644)
}
