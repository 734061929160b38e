package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/raphi011/cck/internal/claude"
	"github.com/raphi011/cck/internal/config"
	"github.com/raphi011/cck/internal/log"
)

// exitCodeError carries a process exit code out of a command without
// printing anything. Execute turns it into os.Exit.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// projectDir is the project developer commands operate on:
// CLAUDE_PROJECT_DIR if set, else the working directory.
func projectDir(ctx context.Context) string {
	if dir := os.Getenv(claude.EnvProjectDir); dir != "" {
		return dir
	}
	return config.WorkDirFromContext(ctx)
}

// copyToClipboard copies text to the clipboard. Failure is only a warning;
// the text is printed anyway.
func copyToClipboard(ctx context.Context, text string) {
	l := log.FromContext(ctx)
	if err := clipboard.WriteAll(text); err != nil {
		l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		return
	}
	l.Debug("copied to clipboard", "bytes", len(text))
}
