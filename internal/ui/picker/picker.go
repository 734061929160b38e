// Package picker provides the interactive skill picker behind `cck skills -i`.
//
// The picker renders to stderr so the chosen skill can be piped from stdout.
package picker

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/cck/internal/manifest"
	"github.com/raphi011/cck/internal/ui/styles"
)

const maxVisible = 10

// Result is the outcome of a picker session.
type Result struct {
	Entry     manifest.Entry
	Cancelled bool
}

type entrySource []manifest.Entry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// Model is the bubbletea model of the picker.
type Model struct {
	entries   []manifest.Entry
	input     textinput.Model
	filtered  []fuzzy.Match
	cursor    int
	selected  int
	cancelled bool
}

// New creates a picker over entries with an empty, focused filter.
func New(entries []manifest.Entry) Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "Filter: "
	ti.CharLimit = 64
	ti.SetWidth(40)
	ti.Focus()

	m := Model{entries: entries, input: ti, selected: -1}
	m.applyFilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) == 0 {
				return m, nil
			}
			m.selected = m.filtered[m.cursor].Index
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m Model) View() tea.View {
	if m.Done() {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Skills") + "\n")
	b.WriteString(m.input.View() + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		match := m.filtered[i]
		e := m.entries[match.Index]

		cursor := "  "
		if i == m.cursor {
			cursor = styles.AccentStyle.Render("> ")
		}
		b.WriteString(cursor + highlight(e.Name, match.MatchedIndexes, i == m.cursor) + "\n")
		b.WriteString("    " + styles.InfoStyle.Render(e.Description) + "\n")
	}
	if end < len(m.filtered) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching skills") + "\n")
	}

	b.WriteString("\n" + styles.MutedStyle.Render("↑/↓ select • type to filter • enter confirm • esc cancel"))
	return tea.NewView(b.String())
}

// Done reports whether the user confirmed or cancelled.
func (m Model) Done() bool {
	return m.cancelled || m.selected >= 0
}

// Result returns the outcome. A model that never finished counts as
// cancelled.
func (m Model) Result() Result {
	if m.cancelled || m.selected < 0 {
		return Result{Cancelled: true}
	}
	return Result{Entry: m.entries[m.selected]}
}

func (m *Model) applyFilter() {
	filter := m.input.Value()
	if filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.entries))
		for i, e := range m.entries {
			m.filtered[i] = fuzzy.Match{Str: e.Name, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(filter, entrySource(m.entries))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(len(m.filtered)-1, 0)
	}
}

func highlight(label string, matched []int, selected bool) string {
	base := styles.NormalStyle
	if selected {
		base = styles.AccentStyle
	}
	if len(matched) == 0 {
		return base.Render(label)
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}
	var b strings.Builder
	for i, r := range label {
		if set[i] {
			b.WriteString(styles.MatchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Run shows the picker on stderr and blocks until the user confirms or
// cancels. An empty entry list returns a cancelled result immediately.
func Run(entries []manifest.Entry) (Result, error) {
	if len(entries) == 0 {
		return Result{Cancelled: true}, nil
	}

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(New(entries),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	return final.(Model).Result(), nil
}
