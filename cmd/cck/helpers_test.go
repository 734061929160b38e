package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/config"
	"github.com/raphi011/cck/internal/log"
	"github.com/raphi011/cck/internal/output"
)

// testEnv isolates a command run from the user's real config and settings.
// It returns the project directory.
func testEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(claude.EnvProjectDir, "")
	t.Setenv(config.EnvConfigPath, filepath.Join(home, "cck", "config.toml"))
	t.Setenv("CLAUDE_CONFIG_DIR", filepath.Join(home, ".claude"))
	t.Setenv(log.DebugEnv, "")
	return t.TempDir()
}

// testContext builds the context Execute would build, with output captured
// in out.
func testContext(t *testing.T, dir string, out io.Writer) context.Context {
	t.Helper()
	cfg := config.Default()
	cfg.UI.Theme = "none"

	ctx := context.Background()
	ctx = config.WithConfig(ctx, &cfg)
	ctx = config.WithWorkDir(ctx, dir)
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, false))
	return output.WithPrinter(ctx, out)
}

// execute runs the root command with args in dir. stdout holds both the
// output printer and the command's own writer, with ANSI sequences removed.
func execute(t *testing.T, dir, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.ExecuteContext(testContext(t, dir, &out))
	return ansi.Strip(out.String()), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// project lays out a project with one of every source the hooks read.
func project(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, ".claude", "cck.json"), `{"style":{"indent":2}}`)
	writeFile(t, filepath.Join(dir, ".claude", "settings.json"), `{"responseLanguage":"de"}`)
	writeFile(t, filepath.Join(dir, ".mcp.json"), `{"mcpServers":{"fs":{"command":"npx","args":["server-fs"]}}}`)
	writeFile(t, filepath.Join(dir, ".claude", "skills", "pdf", "SKILL.md"), "---\nname: pdf\ndescription: Fill PDF forms\n---\n")
	writeFile(t, filepath.Join(dir, ".claude", "skills", "lint", "SKILL.md"), "---\nname: lint\ndescription: Lint rules\n---\n")
}
