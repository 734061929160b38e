package styles

import (
	"github.com/raphi011/cck/internal/policy"
)

// Symbols used in check and doctor output.
const (
	SymbolBlock = "✗"
	SymbolWarn  = "!"
	SymbolAllow = "✓"
)

// DispositionSymbol returns the bare symbol for a disposition.
func DispositionSymbol(d policy.Disposition) string {
	switch d {
	case policy.Block:
		return SymbolBlock
	case policy.Warn:
		return SymbolWarn
	default:
		return SymbolAllow
	}
}

// FormatDisposition returns the colored symbol and name, e.g. "✗ BLOCK".
func FormatDisposition(d policy.Disposition) string {
	text := DispositionSymbol(d) + " " + d.String()
	switch d {
	case policy.Block:
		return ErrorStyle.Render(text)
	case policy.Warn:
		return WarningStyle.Render(text)
	default:
		return SuccessStyle.Render(text)
	}
}

// FormatStatus renders a pass/fail marker for doctor-style listings.
func FormatStatus(ok bool) string {
	if ok {
		return SuccessStyle.Render(SymbolAllow)
	}
	return ErrorStyle.Render(SymbolBlock)
}
