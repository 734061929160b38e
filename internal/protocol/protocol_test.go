package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/raphi011/cck/internal/log"
)

func runHook(t *testing.T, h Hook, input string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(context.Background(), Streams{
		In:  strings.NewReader(input),
		Out: &out,
		Err: &errOut,
	}, h)
	return code, out.String(), errOut.String()
}

func staticHook(role Role, resp Response, err error) Hook {
	return Hook{
		Name: "test",
		Role: role,
		Handle: func(context.Context, Event) (Response, error) {
			return resp, err
		},
	}
}

func TestRun_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, role := range []Role{RoleDecision, RoleAdvisory} {
		called := false
		h := Hook{Name: "test", Role: role, Handle: func(context.Context, Event) (Response, error) {
			called = true
			return Context("should not be printed"), nil
		}}

		code, stdout, stderr := runHook(t, h, "")
		if code != ExitOK {
			t.Errorf("%s role: exit = %d, want %d", role, code, ExitOK)
		}
		if stdout != "" || stderr != "" {
			t.Errorf("%s role: unexpected output stdout=%q stderr=%q", role, stdout, stderr)
		}
		if called {
			t.Errorf("%s role: handler called for empty input", role)
		}
	}
}

func TestRun_BlankInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role       Role
		wantCode   int
		wantStderr string
	}{
		{RoleDecision, ExitError, "Error: Invalid JSON input\n"},
		{RoleAdvisory, ExitOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := runHook(t, staticHook(tt.role, Context("ctx"), nil), "   \n\t")
			if code != tt.wantCode {
				t.Errorf("exit = %d, want %d", code, tt.wantCode)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			if stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_NonObjectInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{`[]`, `"x"`, `42`, `null`} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runHook(t, staticHook(RoleDecision, Allow(), nil), input)
			if code != ExitError {
				t.Errorf("decision: exit = %d, want %d", code, ExitError)
			}
			if stdout != "" || !strings.Contains(stderr, "not a JSON object") {
				t.Errorf("decision: stdout=%q stderr=%q", stdout, stderr)
			}

			var got Event
			h := Hook{Name: "mcp", Role: RoleAdvisory, Handle: func(_ context.Context, ev Event) (Response, error) {
				got = ev
				return Context("ctx"), nil
			}}
			code, stdout, stderr = runHook(t, h, input)
			if code != ExitOK || stdout != "ctx\n" {
				t.Errorf("advisory: exit = %d stdout = %q, want 0 and context", code, stdout)
			}
			if !strings.HasPrefix(stderr, "mcp warning:") {
				t.Errorf("advisory: stderr = %q, want warning prefix", stderr)
			}
			if !got.Empty() {
				t.Error("advisory: expected empty event for non-object input")
			}
		})
	}
}

func TestRun_DebugLogsEvent(t *testing.T) {
	t.Parallel()

	var logs, out, errOut bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&logs, true, false))
	input := `{"hook_event_name":"PreToolUse","tool_name":"Edit","session_id":"s-1","prompt":"hey"}`
	code := Run(ctx, Streams{In: strings.NewReader(input), Out: &out, Err: &errOut}, staticHook(RoleDecision, Allow(), nil))
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	want := "debug: event hook=test event=PreToolUse tool=Edit session=s-1 prompt_bytes=3\n"
	if logs.String() != want {
		t.Errorf("log = %q, want %q", logs.String(), want)
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errOut.String())
	}
}

func TestRun_MalformedInput(t *testing.T) {
	t.Parallel()

	t.Run("decision hook exits 1", func(t *testing.T) {
		t.Parallel()
		code, stdout, stderr := runHook(t, staticHook(RoleDecision, Block("nope"), nil), "{not json")
		if code != ExitError {
			t.Errorf("exit = %d, want %d", code, ExitError)
		}
		if stdout != "" {
			t.Errorf("stdout = %q, want empty", stdout)
		}
		if !strings.Contains(stderr, "Invalid JSON input") {
			t.Errorf("stderr = %q, want JSON diagnostic", stderr)
		}
	})

	t.Run("advisory hook continues with empty event", func(t *testing.T) {
		t.Parallel()
		var got Event
		h := Hook{Name: "skills", Role: RoleAdvisory, Handle: func(_ context.Context, ev Event) (Response, error) {
			got = ev
			return Context("ctx"), nil
		}}
		code, stdout, stderr := runHook(t, h, "{not json")
		if code != ExitOK {
			t.Errorf("exit = %d, want %d", code, ExitOK)
		}
		if stdout != "ctx\n" {
			t.Errorf("stdout = %q, want %q", stdout, "ctx\n")
		}
		if !strings.HasPrefix(stderr, "skills warning:") {
			t.Errorf("stderr = %q, want warning prefix", stderr)
		}
		if !got.Empty() {
			t.Error("expected empty event after malformed input")
		}
	})
}

func TestRun_Responses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		role       Role
		resp       Response
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:     "allow",
			role:     RoleDecision,
			resp:     Allow(),
			wantCode: ExitOK,
		},
		{
			name:       "context",
			role:       RoleAdvisory,
			resp:       Context("# Header\nbody"),
			wantCode:   ExitOK,
			wantStdout: "# Header\nbody\n",
		},
		{
			name:     "empty context suppresses write",
			role:     RoleAdvisory,
			resp:     Context(""),
			wantCode: ExitOK,
		},
		{
			name:       "warn",
			role:       RoleDecision,
			resp:       Warn("careful <here> & there"),
			wantCode:   ExitOK,
			wantStdout: `{"systemMessage":"careful <here> & there"}` + "\n",
		},
		{
			name:       "block",
			role:       RoleDecision,
			resp:       Block("blocked"),
			wantCode:   ExitBlock,
			wantStderr: "blocked\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := runHook(t, staticHook(tt.role, tt.resp, nil), `{"session_id":"abc"}`)
			if code != tt.wantCode {
				t.Errorf("exit = %d, want %d", code, tt.wantCode)
			}
			if stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
			if stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_WarnIsSingleLineJSON(t *testing.T) {
	t.Parallel()

	_, stdout, _ := runHook(t, staticHook(RoleDecision, Warn("⚠️ line one\nline two"), nil), `{}`)
	if strings.Count(stdout, "\n") != 1 {
		t.Fatalf("stdout = %q, want exactly one line", stdout)
	}
	var msg map[string]string
	if err := json.Unmarshal([]byte(stdout), &msg); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if msg["systemMessage"] != "⚠️ line one\nline two" {
		t.Errorf("systemMessage = %q", msg["systemMessage"])
	}
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name         string
		hook         Hook
		wantCode     int
		wantStderrIn string
	}{
		{
			name:         "decision error",
			hook:         staticHook(RoleDecision, Allow(), boom),
			wantCode:     ExitError,
			wantStderrIn: "Error: boom",
		},
		{
			name:         "advisory error",
			hook:         staticHook(RoleAdvisory, Allow(), boom),
			wantCode:     ExitOK,
			wantStderrIn: "test warning: boom",
		},
		{
			name: "decision panic",
			hook: Hook{Name: "p", Role: RoleDecision, Handle: func(context.Context, Event) (Response, error) {
				panic("kaboom")
			}},
			wantCode:     ExitError,
			wantStderrIn: "panic: kaboom",
		},
		{
			name: "advisory panic",
			hook: Hook{Name: "p", Role: RoleAdvisory, Handle: func(context.Context, Event) (Response, error) {
				panic("kaboom")
			}},
			wantCode:     ExitOK,
			wantStderrIn: "p warning: panic: kaboom",
		},
		{
			name:         "advisory block is rejected",
			hook:         staticHook(RoleAdvisory, Block("x"), nil),
			wantCode:     ExitOK,
			wantStderrIn: "attempted to block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := runHook(t, tt.hook, `{}`)
			if code != tt.wantCode {
				t.Errorf("exit = %d, want %d", code, tt.wantCode)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			if !strings.Contains(stderr, tt.wantStderrIn) {
				t.Errorf("stderr = %q, want to contain %q", stderr, tt.wantStderrIn)
			}
		})
	}
}

func TestReadInput_NonTerminal(t *testing.T) {
	t.Parallel()

	data, err := ReadInput(strings.NewReader(`{"a":1}`))
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("ReadInput() = %q", data)
	}
}
