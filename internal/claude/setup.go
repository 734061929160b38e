package claude

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/raphi011/cck/internal/storage"
)

// HookSpec describes where one cck hook is attached in settings.json.
type HookSpec struct {
	Name    string // cck hook subcommand
	Event   string // Claude Code hook event
	Matcher string // tool matcher; empty for events without tools
}

// Hooks lists every hook cck provides, in registration order.
var Hooks = []HookSpec{
	{Name: "file-protection", Event: "PreToolUse", Matcher: "Edit|Write|MultiEdit"},
	{Name: "inject-settings", Event: "UserPromptSubmit"},
	{Name: "language", Event: "SessionStart"},
	{Name: "mcp", Event: "SessionStart"},
	{Name: "skills", Event: "SessionStart"},
}

// Command is the shell command Claude Code runs for a hook.
func (h HookSpec) Command(binary string) string {
	return binary + " hook " + h.Name
}

// matches reports whether command already runs this hook, whatever the
// binary path.
func (h HookSpec) matches(command string) bool {
	fields := strings.Fields(command)
	n := len(fields)
	return n >= 3 && fields[n-2] == "hook" && fields[n-1] == h.Name &&
		strings.Contains(filepath.Base(fields[n-3]), "cck")
}

type hookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

type hookEntry struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []hookCommand `json:"hooks"`
}

func readSettings(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []byte("{}"), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []byte("{}"), nil
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("parse %s: not a JSON object", path)
	}
	return data, nil
}

// Registered reports, per hook name, whether settings.json at path already
// runs it. A missing file registers nothing.
func Registered(path string) (map[string]bool, error) {
	data, err := readSettings(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(Hooks))
	for _, h := range Hooks {
		out[h.Name] = isRegistered(data, h)
	}
	return out, nil
}

func isRegistered(data []byte, h HookSpec) bool {
	found := false
	gjson.GetBytes(data, "hooks."+h.Event).ForEach(func(_, entry gjson.Result) bool {
		entry.Get("hooks").ForEach(func(_, cmd gjson.Result) bool {
			if h.matches(cmd.Get("command").String()) {
				found = true
			}
			return !found
		})
		return !found
	})
	return found
}

// Register adds every missing hook to settings.json at path, creating the
// file if needed. Existing keys and hooks are kept in place. It returns the
// names of the hooks it added; an empty result means nothing changed.
// Concurrent calls for the same path are serialized.
func Register(path, binary string) ([]string, error) {
	var added []string
	err := storage.WithLock(path, func() error {
		var err error
		added, err = register(path, binary)
		return err
	})
	return added, err
}

func register(path, binary string) ([]string, error) {
	data, err := readSettings(path)
	if err != nil {
		return nil, err
	}
	if hooks := gjson.GetBytes(data, "hooks"); hooks.Exists() && !hooks.IsObject() {
		return nil, fmt.Errorf("%s: hooks is not an object", path)
	}

	var added []string
	for _, h := range Hooks {
		if isRegistered(data, h) {
			continue
		}
		data, err = appendHook(data, h, binary)
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", h.Name, err)
		}
		added = append(added, h.Name)
	}
	if len(added) == 0 {
		return nil, nil
	}

	out := pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "  "})
	if err := storage.WriteFile(path, out, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return added, nil
}

func appendHook(data []byte, h HookSpec, binary string) ([]byte, error) {
	entry, err := json.Marshal(hookEntry{
		Matcher: h.Matcher,
		Hooks:   []hookCommand{{Type: "command", Command: h.Command(binary)}},
	})
	if err != nil {
		return nil, err
	}

	key := "hooks." + h.Event
	switch existing := gjson.GetBytes(data, key); {
	case !existing.Exists():
		return sjson.SetRawBytes(data, key, append(append([]byte("["), entry...), ']'))
	case existing.IsArray():
		return sjson.SetRawBytes(data, key+".-1", entry)
	default:
		return nil, fmt.Errorf("%s is not a list", key)
	}
}
