// Package hooks implements the handlers behind `cck hook <name>`.
//
// Each handler reads one optional source beneath the project directory and
// turns it into a protocol response:
//
//	file-protection  PreToolUse        classify the edited path
//	inject-settings  UserPromptSubmit  .claude/cck.json + cck.local.json
//	language         SessionStart      responseLanguage from .claude/settings*.json
//	mcp              SessionStart      .mcp.json or .claude/.mcp.json
//	skills           SessionStart      <skills dir>/*/SKILL.md
//
// Only file-protection is a decision hook; the others are advisory and never
// abort the host.
//
// Handlers re-read everything from disk on every call. The project
// directory comes from CLAUDE_PROJECT_DIR, else the event's cwd, else the
// process working directory.
package hooks

import (
	"context"
	"fmt"
	"slices"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/policy"
	"github.com/raphi011/cck/internal/protocol"
)

// Hook names, as registered in Claude Code's settings.
const (
	NameFileProtection = "file-protection"
	NameInjectSettings = "inject-settings"
	NameLanguage       = "language"
	NameMCP            = "mcp"
	NameSkills         = "skills"
)

// All returns every hook in registration order.
func All() []protocol.Hook {
	return []protocol.Hook{
		{Name: NameFileProtection, Role: protocol.RoleDecision, Handle: fileProtection},
		{Name: NameInjectSettings, Role: protocol.RoleAdvisory, Handle: contextHandler(SettingsContext)},
		{Name: NameLanguage, Role: protocol.RoleAdvisory, Handle: contextHandler(LanguageContext)},
		{Name: NameMCP, Role: protocol.RoleAdvisory, Handle: contextHandler(MCPContext)},
		{Name: NameSkills, Role: protocol.RoleAdvisory, Handle: contextHandler(SkillsContext)},
	}
}

// Names returns the hook names in registration order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, h := range all {
		names[i] = h.Name
	}
	return names
}

// Lookup finds a hook by name.
func Lookup(name string) (protocol.Hook, error) {
	all := All()
	i := slices.IndexFunc(all, func(h protocol.Hook) bool { return h.Name == name })
	if i < 0 {
		return protocol.Hook{}, fmt.Errorf("unknown hook %q (available: %v)", name, Names())
	}
	return all[i], nil
}

// ContextFunc renders the context an advisory hook injects for a project.
// An empty string means there is nothing to inject.
type ContextFunc func(ctx context.Context, projectDir string) string

// ContextFor returns the renderer of an advisory hook, for previews.
func ContextFor(name string) (ContextFunc, error) {
	switch name {
	case NameInjectSettings:
		return SettingsContext, nil
	case NameLanguage:
		return LanguageContext, nil
	case NameMCP:
		return MCPContext, nil
	case NameSkills:
		return SkillsContext, nil
	case NameFileProtection:
		return nil, fmt.Errorf("%s produces a decision, not context; use 'cck check <path>'", name)
	}
	return nil, fmt.Errorf("unknown hook %q (available: %v)", name, Names())
}

func contextHandler(render ContextFunc) protocol.Handler {
	return func(ctx context.Context, ev protocol.Event) (protocol.Response, error) {
		return protocol.Context(render(ctx, claude.ProjectDir(ev.CWD()))), nil
	}
}

func fileProtection(ctx context.Context, ev protocol.Event) (protocol.Response, error) {
	target := ev.ToolInputPath()
	if target == "" {
		return protocol.Allow(), nil
	}

	dir := claude.ProjectDir(ev.CWD())
	c, err := Classifier(ctx, dir)
	if err != nil {
		return protocol.Response{}, err
	}

	d := c.ClassifyIn(target, dir)
	switch d.Disposition {
	case policy.Block:
		return protocol.Block(policy.BlockMessage(d)), nil
	case policy.Warn:
		return protocol.Warn(policy.WarnMessage(d)), nil
	}
	return protocol.Allow(), nil
}

// Classifier builds the classifier for a project: built-in rules plus the
// patterns of the effective config.
func Classifier(ctx context.Context, projectDir string) (*policy.Classifier, error) {
	cfg := EffectiveConfig(ctx, projectDir)
	c, err := policy.NewClassifier(cfg.Protection.Block, cfg.Protection.Warn)
	if err != nil {
		return nil, fmt.Errorf("protection rules: %w", err)
	}
	return c, nil
}
