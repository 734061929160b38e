package policy

import (
	"fmt"
	"strings"
)

// protectedSummary lists the protected categories shown with every block.
var protectedSummary = []string{
	"Environment files (.env, .env.*)",
	"Lock files (package-lock.json, etc.)",
	"Secret/key files (.pem, .key, secrets/)",
	"Git internals (.git/)",
}

// BlockMessage explains a BLOCK decision to the user.
func BlockMessage(d Decision) string {
	var b strings.Builder
	b.WriteString("🚫 BLOCKED: Cannot edit protected file\n")
	fmt.Fprintf(&b, "   File: %s\n", d.Path)
	fmt.Fprintf(&b, "   Pattern: %s\n", d.Pattern)
	b.WriteString("\n")
	b.WriteString("Protected files include:\n")
	for _, s := range protectedSummary {
		fmt.Fprintf(&b, "   - %s\n", s)
	}
	return b.String()
}

// WarnMessage is the system message attached to a WARN decision.
func WarnMessage(d Decision) string {
	return fmt.Sprintf("⚠️ Editing sensitive file: %s (matched: %s)", d.Path, d.Pattern)
}
