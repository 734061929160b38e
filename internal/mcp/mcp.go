// Package mcp reads the MCP server declarations of a project.
package mcp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

// ConfigName is the file that declares MCP servers.
const ConfigName = ".mcp.json"

// Server is one declared MCP server.
type Server struct {
	Name    string   `json:"name"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
	// Type and URL are set for servers reached over HTTP or SSE instead of stdio.
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Invocation is the command line used to start the server, or its URL for
// remote servers.
func (s Server) Invocation() string {
	if s.Command == "" && s.URL != "" {
		return s.URL
	}
	return strings.Join(append([]string{s.Command}, s.Args...), " ")
}

// Candidates returns the locations checked for the config, in order.
func Candidates(projectRoot string) []string {
	return []string{
		filepath.Join(projectRoot, ConfigName),
		filepath.Join(projectRoot, ".claude", ConfigName),
	}
}

// FindConfig returns the first config that exists under projectRoot.
func FindConfig(projectRoot string) (string, bool) {
	for _, p := range Candidates(projectRoot) {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// LoadFile parses the mcpServers object of a config file.
func LoadFile(path string) ([]Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse %s: invalid JSON", path)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("parse %s: top level is not a JSON object", path)
	}

	var servers []Server
	root.Get("mcpServers").ForEach(func(name, decl gjson.Result) bool {
		if !decl.IsObject() {
			return true
		}
		servers = append(servers, serverFrom(name.String(), decl))
		return true
	})

	slices.SortStableFunc(servers, func(a, b Server) int {
		return strings.Compare(a.Name, b.Name)
	})
	return servers, nil
}

func serverFrom(name string, decl gjson.Result) Server {
	s := Server{
		Name:    name,
		Command: stringField(decl, "command"),
		Type:    stringField(decl, "type"),
		URL:     stringField(decl, "url"),
	}
	if args := decl.Get("args"); args.IsArray() {
		for _, a := range args.Array() {
			if a.Type == gjson.String {
				s.Args = append(s.Args, a.Str)
			}
		}
	}
	return s
}

func stringField(r gjson.Result, key string) string {
	v := r.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// Load returns the servers declared in path. A missing or malformed file
// yields no servers.
func Load(path string) []Server {
	servers, err := LoadFile(path)
	if err != nil {
		return nil
	}
	return servers
}

// Discover finds and loads the project's config. ok is false when no config
// file exists.
func Discover(projectRoot string) (servers []Server, path string, ok bool) {
	path, ok = FindConfig(projectRoot)
	if !ok {
		return nil, "", false
	}
	return Load(path), path, true
}

// IsNotFound reports whether err means the config file does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
