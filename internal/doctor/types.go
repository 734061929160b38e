package doctor

import "fmt"

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryConfig represents unreadable or invalid cck config files.
	CategoryConfig IssueCategory = "config"
	// CategoryHooks represents hooks missing from Claude Code's settings.
	CategoryHooks IssueCategory = "hooks"
	// CategorySettings represents settings layers that fail to parse.
	CategorySettings IssueCategory = "settings"
	// CategorySkills represents skill manifests the scanner skips.
	CategorySkills IssueCategory = "skills"
	// CategoryMCP represents an unreadable MCP server config.
	CategoryMCP IssueCategory = "mcp"
)

var categoryOrder = []IssueCategory{CategoryConfig, CategoryHooks, CategorySettings, CategorySkills, CategoryMCP}

var categoryNames = map[IssueCategory]string{
	CategoryConfig:   "Config issues",
	CategoryHooks:    "Hook registration",
	CategorySettings: "Settings issues",
	CategorySkills:   "Skipped skills",
	CategoryMCP:      "MCP config issues",
}

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // file path, hook name or skill directory
	Description string        // human-readable description
	FixAction   string        // what --fix would do; empty if nothing
	Category    IssueCategory // issue category
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s: %s", i.Key, i.Description)
}

// Fix actions.
const (
	FixRegister = "register"
)

// Stats tracks what the checks found healthy.
type Stats struct {
	HooksRegistered int // hooks found in any settings.json
	HooksTotal      int
	SettingsFiles   int // settings layers present and parseable
	SkillsValid     int // manifests that would be injected
	MCPServers      int // servers declared in .mcp.json
	MCPConfig       string
}

// Report is the outcome of all checks.
type Report struct {
	Issues []Issue
	Stats  Stats
}

// Fixable reports whether any issue has a fix action.
func (r Report) Fixable() bool {
	for _, i := range r.Issues {
		if i.FixAction != "" {
			return true
		}
	}
	return false
}
