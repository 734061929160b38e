package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/config"
	"github.com/raphi011/cck/internal/manifest"
	"github.com/raphi011/cck/internal/mcp"
	"github.com/raphi011/cck/internal/settings"
)

// Params describes the installation to diagnose.
type Params struct {
	ProjectDir string
	Config     *config.Config // effective config; nil uses defaults
	ConfigPath string         // global config file; empty skips that check

	// SettingsPaths are the settings.json files searched for hook
	// registrations. --fix registers missing hooks in the first one.
	SettingsPaths []string
	Binary        string // cck executable written into registered hooks
}

func (p Params) config() *config.Config {
	if p.Config != nil {
		return p.Config
	}
	cfg := config.Default()
	return &cfg
}

// Check runs every diagnostic and returns the combined report.
func Check(p Params) Report {
	var r Report
	r.Issues = append(r.Issues, checkConfig(p)...)
	r.Issues = append(r.Issues, checkHooks(p, &r.Stats)...)
	r.Issues = append(r.Issues, checkSettings(p, &r.Stats)...)
	r.Issues = append(r.Issues, checkSkills(p, &r.Stats)...)
	r.Issues = append(r.Issues, checkMCP(p, &r.Stats)...)
	return r
}

// checkConfig loads the global and project config files.
func checkConfig(p Params) []Issue {
	var issues []Issue
	if p.ConfigPath != "" {
		if _, err := config.LoadFile(p.ConfigPath); err != nil {
			issues = append(issues, Issue{
				Key:         p.ConfigPath,
				Description: err.Error(),
				Category:    CategoryConfig,
			})
		}
	}
	if _, err := config.LoadLocal(p.ProjectDir); err != nil {
		issues = append(issues, Issue{
			Key:         config.LocalPath(p.ProjectDir),
			Description: err.Error(),
			Category:    CategoryConfig,
		})
	}
	return issues
}

// checkHooks counts a hook as registered if any settings file runs it.
func checkHooks(p Params, stats *Stats) []Issue {
	var issues []Issue
	registered := make(map[string]bool, len(claude.Hooks))
	for _, path := range p.SettingsPaths {
		reg, err := claude.Registered(path)
		if err != nil {
			issues = append(issues, Issue{
				Key:         path,
				Description: err.Error(),
				Category:    CategoryHooks,
			})
			continue
		}
		for name, ok := range reg {
			registered[name] = registered[name] || ok
		}
	}

	stats.HooksTotal = len(claude.Hooks)
	for _, h := range claude.Hooks {
		if registered[h.Name] {
			stats.HooksRegistered++
			continue
		}
		issues = append(issues, Issue{
			Key:         h.Name,
			Description: fmt.Sprintf("not registered for %s", h.Event),
			FixAction:   FixRegister,
			Category:    CategoryHooks,
		})
	}
	return issues
}

// checkSettings parses both settings layer pairs under .claude.
func checkSettings(p Params, stats *Stats) []Issue {
	var issues []Issue
	dir := claude.ClaudeDir(p.ProjectDir)
	for _, layers := range []settings.Layers{settings.CCKFiles, settings.HostFiles} {
		problems := settings.Check(dir, layers)
		for _, prob := range problems {
			issues = append(issues, Issue{
				Key:         prob.Path,
				Description: prob.Err.Error(),
				Category:    CategorySettings,
			})
		}
		stats.SettingsFiles += countExisting(dir, layers.Project, layers.Local) - len(problems)
	}
	return issues
}

func countExisting(dir string, names ...string) int {
	n := 0
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			n++
		}
	}
	return n
}

// checkSkills reports every manifest the scanner would skip.
func checkSkills(p Params, stats *Stats) []Issue {
	cfg := p.config()
	entries, skipped := manifest.Inspect(cfg.SkillsPath(p.ProjectDir), cfg.SkillsRelBase())
	stats.SkillsValid = len(entries)

	issues := make([]Issue, 0, len(skipped))
	for _, s := range skipped {
		issues = append(issues, Issue{
			Key:         s.Dir,
			Description: s.Reason,
			Category:    CategorySkills,
		})
	}
	return issues
}

// checkMCP parses the first MCP config found. A project without one is
// healthy.
func checkMCP(p Params, stats *Stats) []Issue {
	path, ok := mcp.FindConfig(p.ProjectDir)
	if !ok {
		return nil
	}
	stats.MCPConfig = path
	servers, err := mcp.LoadFile(path)
	if err != nil {
		return []Issue{{
			Key:         path,
			Description: err.Error(),
			Category:    CategoryMCP,
		}}
	}
	stats.MCPServers = len(servers)
	return nil
}

// Err joins all issues into one error, or nil for a clean report.
func (r Report) Err() error {
	errs := make([]error, 0, len(r.Issues))
	for _, i := range r.Issues {
		errs = append(errs, i)
	}
	return errors.Join(errs...)
}
