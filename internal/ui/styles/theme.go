package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for developer command output.
type Theme struct {
	Primary color.Color // titles, table headers
	Accent  color.Color // selected items, matched characters
	Success color.Color // allowed paths, registered hooks
	Error   color.Color // blocked paths, failures
	Muted   color.Color // help text, paths
	Normal  color.Color // standard text
	Info    color.Color // descriptions
	Warning color.Color // warned paths, skipped manifests
}

// themeFamily groups light and dark variants of a theme.
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme
}

var (
	// DefaultTheme uses the 256-color palette.
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // teal
		Accent:  lipgloss.Color("212"), // pink
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Info:    lipgloss.Color("244"), // gray
		Warning: lipgloss.Color("214"), // orange
	}

	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"), // purple
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Muted:   lipgloss.Color("#6272a4"), // comment
		Normal:  lipgloss.Color("#f8f8f2"),
		Info:    lipgloss.Color("#8be9fd"), // cyan
		Warning: lipgloss.Color("#ffb86c"),
	}

	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"), // nord8
		Accent:  lipgloss.Color("#b48ead"), // nord15
		Success: lipgloss.Color("#a3be8c"), // nord14
		Error:   lipgloss.Color("#bf616a"), // nord11
		Muted:   lipgloss.Color("#4c566a"), // nord3
		Normal:  lipgloss.Color("#eceff4"), // nord6
		Info:    lipgloss.Color("#81a1c1"), // nord9
		Warning: lipgloss.Color("#ebcb8b"), // nord13
	}

	NordLightTheme = Theme{
		Primary: lipgloss.Color("#5e81ac"), // nord10
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Muted:   lipgloss.Color("#9a9a9a"),
		Normal:  lipgloss.Color("#2e3440"), // nord0
		Info:    lipgloss.Color("#81a1c1"),
		Warning: lipgloss.Color("#d08770"), // nord12
	}

	// NoneTheme keeps bold and underline but emits no colors.
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

var themeFamilies = map[string]themeFamily{
	"default": {Dark: &DefaultTheme},
	"dracula": {Dark: &DraculaTheme},
	"nord":    {Light: &NordLightTheme, Dark: &NordTheme},
	"none":    {Dark: &NoneTheme},
}

var currentTheme = DefaultTheme

// Current returns the active theme.
func Current() Theme {
	return currentTheme
}

// Init selects the theme named by ui.theme. Unknown or empty names use the
// default theme; config validation reports them separately.
// Call this after loading config and before rendering anything.
func Init(name string) {
	family, ok := themeFamilies[name]
	if !ok {
		family = themeFamilies["default"]
	}
	dark := family.Light == nil || lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
	set(selectVariant(family, dark))
}

// selectVariant picks the light or dark variant, falling back to whichever
// exists.
func selectVariant(family themeFamily, dark bool) Theme {
	if !dark && family.Light != nil {
		return *family.Light
	}
	if family.Dark != nil {
		return *family.Dark
	}
	return DefaultTheme
}

func set(theme Theme) {
	currentTheme = theme
	applyTheme(theme)
}
