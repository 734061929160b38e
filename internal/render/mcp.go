package render

import (
	"strings"

	"github.com/raphi011/cck/internal/mcp"
)

// MCPServers renders the MCP auto-loading protocol for the given servers.
func MCPServers(servers []mcp.Server) string {
	if len(servers) == 0 {
		return ""
	}

	names := make([]string, len(servers))
	for i, s := range servers {
		names[i] = s.Name
	}

	lines := []string{
		"# MCP Server Auto-Loading Protocol",
		"",
		"## Available MCP Servers",
		"",
		"Servers discovered: " + strings.Join(names, ", "),
		"",
		"## How to Use MCP Tools",
		"",
		"MCP tools are invoked using the format: `mcp__<server-name>__<tool-name>`",
		"",
		"## Configured Servers",
		"",
	}
	for _, s := range servers {
		lines = append(lines, "- **"+s.Name+"**: `"+s.Invocation()+"`")
	}
	lines = append(lines,
		"",
		"## When to Use MCP Servers",
		"",
		"- Fresh/current information newer than training data",
		"- External resources (docs, APIs, databases)",
		"- Specialized tools that improve output quality",
		"- Version-specific or recent information",
		"",
		"**TIP**: Prefer MCP servers for real-time data over training knowledge.",
	)
	return strings.Join(lines, "\n")
}
