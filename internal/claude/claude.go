// Package claude locates the directories Claude Code reads: the project it
// runs in, that project's .claude directory, and the user-level config
// directory. It also registers cck's hooks in Claude Code's settings.json.
package claude

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvProjectDir is set by Claude Code for every hook invocation.
const EnvProjectDir = "CLAUDE_PROJECT_DIR"

// DirName is the per-project directory Claude Code reads settings from.
const DirName = ".claude"

// ProjectDir returns the project root for a hook invocation.
// CLAUDE_PROJECT_DIR wins, then the cwd reported in the event, then the
// process working directory.
func ProjectDir(eventCWD string) string {
	if dir := os.Getenv(EnvProjectDir); dir != "" {
		return dir
	}
	if eventCWD != "" {
		return eventCWD
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// ClaudeDir returns the .claude directory of a project.
func ClaudeDir(projectDir string) string {
	return filepath.Join(projectDir, DirName)
}

// GetConfigDir returns the Claude Code configuration directory path.
// Checks CLAUDE_CONFIG_DIR env var first, then falls back to ~/.claude.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("CLAUDE_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".claude"), nil
}

// SettingsPath returns the settings.json that hooks are registered in:
// the user-level file when global, else the project's.
func SettingsPath(projectDir string, global bool) (string, error) {
	if !global {
		return filepath.Join(ClaudeDir(projectDir), "settings.json"), nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}
