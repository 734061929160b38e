package hooks

import (
	"context"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/config"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/manifest"
	"github.com/raphi011/cck/internal/mcp"
	"github.com/raphi011/cck/internal/render"
	"github.com/raphi011/cck/internal/settings"
)

// EffectiveConfig merges the project's .claude/cck.toml over the config in
// ctx. An invalid project config is reported as a warning and ignored.
func EffectiveConfig(ctx context.Context, projectDir string) *config.Config {
	cfg := config.FromContext(ctx)
	local, err := config.LoadLocal(projectDir)
	if err != nil {
		log.FromContext(ctx).Warnf("%v (using global config)", err)
		return cfg
	}
	return config.MergeLocal(cfg, local)
}

// SettingsContext renders the merged cck settings of a project.
func SettingsContext(ctx context.Context, projectDir string) string {
	doc, ok := settings.Resolve(claude.ClaudeDir(projectDir), settings.CCKFiles)
	log.FromContext(ctx).Debug("resolved settings", "dir", projectDir, "found", ok)
	if !ok {
		return ""
	}
	return render.Settings(doc)
}

// LanguageContext renders the response-language rules configured in the
// host's settings files.
func LanguageContext(ctx context.Context, projectDir string) string {
	project, local := settings.LoadLayers(claude.ClaudeDir(projectDir), settings.HostFiles)
	raw := settings.ResponseLanguage(project, local)
	log.FromContext(ctx).Debug("response language", "raw", raw)
	return render.ResponseLanguage(raw)
}

// MCPContext renders the MCP servers declared for a project.
func MCPContext(ctx context.Context, projectDir string) string {
	servers, path, ok := mcp.Discover(projectDir)
	log.FromContext(ctx).Debug("mcp config", "path", path, "found", ok, "servers", len(servers))
	return render.MCPServers(servers)
}

// SkillsContext renders the skills found in the project's skills directory.
func SkillsContext(ctx context.Context, projectDir string) string {
	entries := Skills(ctx, projectDir)
	log.FromContext(ctx).Debug("skills", "count", len(entries))
	return render.Skills(entries)
}

// Skills scans the skills directory of the effective config.
func Skills(ctx context.Context, projectDir string) []manifest.Entry {
	cfg := EffectiveConfig(ctx, projectDir)
	return manifest.Scan(cfg.SkillsPath(projectDir), cfg.SkillsRelBase())
}
