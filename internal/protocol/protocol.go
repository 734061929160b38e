package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/tidwall/gjson"

	"github.com/raphi011/cck/internal/log"
)

// Exit codes understood by the host.
const (
	ExitOK    = 0
	ExitError = 1
	ExitBlock = 2
)

// Role decides how a hook degrades on failure.
type Role int

const (
	// RoleDecision hooks gate an operation. Failures exit 1.
	RoleDecision Role = iota
	// RoleAdvisory hooks only add optional context. Failures exit 0 with a warning.
	RoleAdvisory
)

func (r Role) String() string {
	if r == RoleDecision {
		return "decision"
	}
	return "advisory"
}

type responseKind int

const (
	kindAllow responseKind = iota
	kindContext
	kindWarn
	kindBlock
)

// Response is the outcome of a single hook invocation.
type Response struct {
	kind responseKind
	text string
}

// Allow lets the operation proceed without output.
func Allow() Response { return Response{kind: kindAllow} }

// Context injects plain text into the conversation. Empty text writes nothing.
func Context(text string) Response { return Response{kind: kindContext, text: text} }

// Warn allows the operation and attaches a system message.
func Warn(message string) Response { return Response{kind: kindWarn, text: message} }

// Block rejects the operation. The explanation is written to stderr.
func Block(explanation string) Response { return Response{kind: kindBlock, text: explanation} }

// Handler produces the response for one event.
type Handler func(ctx context.Context, ev Event) (Response, error)

// Hook binds a handler to its name and role.
type Hook struct {
	Name   string
	Role   Role
	Handle Handler
}

// Streams are the process streams a hook talks through.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// systemMessage is the JSON shape of a Warn response.
type systemMessage struct {
	SystemMessage string `json:"systemMessage"`
}

// ReadInput reads the whole payload. An interactive terminal on stdin counts
// as no input so that running a hook by hand does not wait for EOF.
func ReadInput(r io.Reader) ([]byte, error) {
	if f, ok := r.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return nil, nil
		}
	}
	return io.ReadAll(r)
}

// Run executes a hook against the given streams and returns the process exit
// code. It never panics: a panicking handler is treated as an internal failure.
func Run(ctx context.Context, s Streams, h Hook) (code int) {
	defer func() {
		if r := recover(); r != nil {
			code = h.fail(s.Err, fmt.Errorf("panic: %v", r))
		}
	}()

	data, err := ReadInput(s.In)
	if err != nil {
		return h.fail(s.Err, fmt.Errorf("read input: %w", err))
	}
	if len(data) == 0 {
		return ExitOK
	}

	// A decision hook cannot decide without an event object, so blank or
	// non-object input is an error there. Advisory hooks carry on without it.
	if len(bytes.TrimSpace(data)) == 0 {
		if h.Role == RoleDecision {
			fmt.Fprintln(s.Err, "Error: Invalid JSON input")
			return ExitError
		}
		return ExitOK
	}
	if !gjson.ValidBytes(data) {
		if h.Role == RoleDecision {
			fmt.Fprintln(s.Err, "Error: Invalid JSON input")
			return ExitError
		}
		fmt.Fprintf(s.Err, "%s warning: invalid JSON input\n", h.Name)
		data = nil
	}

	ev := ParseEvent(data)
	if ev.raw.Exists() && !ev.raw.IsObject() {
		if h.Role == RoleDecision {
			fmt.Fprintln(s.Err, "Error: event payload is not a JSON object")
			return ExitError
		}
		fmt.Fprintf(s.Err, "%s warning: event payload is not a JSON object\n", h.Name)
		ev = ParseEvent(nil)
	}
	logEvent(ctx, h, ev)

	resp, err := h.Handle(ctx, ev)
	if err != nil {
		return h.fail(s.Err, err)
	}
	if resp.kind == kindBlock && h.Role != RoleDecision {
		return h.fail(s.Err, errors.New("advisory hook attempted to block"))
	}
	return resp.write(s)
}

func logEvent(ctx context.Context, h Hook, ev Event) {
	l := log.FromContext(ctx)
	if ev.Empty() {
		l.Debug("no event data", "hook", h.Name)
		return
	}
	l.Debug("event", "hook", h.Name, "event", ev.HookEventName(), "tool", ev.ToolName(),
		"session", ev.SessionID(), "prompt_bytes", len(ev.Prompt()))
}

// fail reports an internal failure and picks the least disruptive exit code.
func (h Hook) fail(w io.Writer, err error) int {
	if h.Role == RoleDecision {
		fmt.Fprintf(w, "Error: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(w, "%s warning: %v\n", h.Name, err)
	return ExitOK
}

func (r Response) write(s Streams) int {
	switch r.kind {
	case kindContext:
		if r.text != "" {
			fmt.Fprintln(s.Out, r.text)
		}
	case kindWarn:
		enc := json.NewEncoder(s.Out)
		enc.SetEscapeHTML(false)
		enc.Encode(systemMessage{SystemMessage: r.text})
	case kindBlock:
		text := r.text
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		fmt.Fprint(s.Err, text)
		return ExitBlock
	}
	return ExitOK
}
