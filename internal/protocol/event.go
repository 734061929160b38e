package protocol

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Event is a read-only view over the hook payload sent by the host.
// Every accessor returns a zero value when the field is absent or has an
// unexpected type; none of them fail.
type Event struct {
	raw gjson.Result
}

// ParseEvent wraps a raw JSON payload. Callers must validate the payload first;
// invalid JSON yields an Event where every field is absent.
func ParseEvent(data []byte) Event {
	return Event{raw: gjson.ParseBytes(data)}
}

// Empty reports whether the event carries no data at all.
func (e Event) Empty() bool {
	return !e.raw.Exists() || (e.raw.IsObject() && len(e.raw.Map()) == 0)
}

// String returns the string at path, or "" if absent or not a string.
func (e Event) String(path string) string {
	v := e.raw.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// HookEventName returns hook_event_name (e.g. "PreToolUse").
func (e Event) HookEventName() string { return e.String("hook_event_name") }

// SessionID returns session_id.
func (e Event) SessionID() string { return e.String("session_id") }

// CWD returns the working directory the host reported.
func (e Event) CWD() string { return e.String("cwd") }

// ToolName returns tool_name for tool events.
func (e Event) ToolName() string { return e.String("tool_name") }

// Prompt returns the submitted prompt for UserPromptSubmit events.
func (e Event) Prompt() string { return e.String("prompt") }

// ToolInputPath returns the file path targeted by a tool call.
// tool_input.file_path takes precedence over tool_input.path; blank values
// count as absent.
func (e Event) ToolInputPath() string {
	if p := e.String("tool_input.file_path"); strings.TrimSpace(p) != "" {
		return p
	}
	if p := e.String("tool_input.path"); strings.TrimSpace(p) != "" {
		return p
	}
	return ""
}
