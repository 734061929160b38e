package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-project config, relative to the project root.
const LocalConfigFileName = ".claude/cck.toml"

// LocalConfig holds per-project overrides from .claude/cck.toml.
// Zero-value strings mean "not set" (inherit from global).
type LocalConfig struct {
	Protection ProtectionConfig `toml:"protection"` // appended to global
	Skills     SkillsConfig     `toml:"skills"`
	UI         UIConfig         `toml:"ui"`
}

// LocalPath returns the local config location for a project.
func LocalPath(projectDir string) string {
	return filepath.Join(projectDir, filepath.FromSlash(LocalConfigFileName))
}

// LoadLocal reads the per-project config of projectDir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(projectDir string) (*LocalConfig, error) {
	configFile := LocalPath(projectDir)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if _, err := toml.Decode(string(data), &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if err := validateEnum(local.UI.Theme, "ui.theme", ValidThemes); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := validateSkillsDir(local.Skills.Dir); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := validateProtection(local.Protection); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}

	return &local, nil
}

// defaultLocalConfig is the template for cck config init --local
const defaultLocalConfig = `# cck local config (per-project overrides)
# Lives at .claude/cck.toml in the project root.
# Settings here override the global config for this project only.

# Protection patterns here are added to the global patterns. '^' anchors at
# the project root as well as at the start of the full path.
# [protection]
# block = ['^deploy/prod/']
# warn = ['^migrations/']

# [skills]
# dir = ".claude/skills"

# [ui]
# theme = "nord"
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}

// InitLocal creates the local config template in projectDir.
func InitLocal(projectDir string, force bool) (string, error) {
	path := LocalPath(projectDir)
	return path, writeTemplate(path, defaultLocalConfig, force)
}
