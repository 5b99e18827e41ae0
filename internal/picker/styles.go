package picker

import "github.com/charmbracelet/lipgloss"

// lineState is the presentation state of one rendered candidate.
// Exactly one state applies per line, resolved in priority order by
// Model.lineState.
type lineState int

const (
	lineNormal         lineState = iota
	lineCursor                   // Under the cursor
	lineSelected                 // In the multi-select set
	lineCursorSelected           // Under the cursor and selected
	lineSkip                     // Unselectable per the skip predicate
)

// Styles maps line states to their rendering. The ANSI table styles the
// whole padded row; the plain table leaves styles as no-ops and carries
// the state in fixed-width text markers instead, so padding math stays
// identical either way.
type Styles struct {
	Normal         lipgloss.Style
	Cursor         lipgloss.Style
	Selected       lipgloss.Style
	CursorSelected lipgloss.Style
	Skip           lipgloss.Style
	Status         lipgloss.Style

	plain bool
}

// DefaultStyles returns the ANSI style table.
func DefaultStyles() Styles {
	return Styles{
		Normal:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Cursor:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")),
		Selected:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		CursorSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Background(lipgloss.Color("62")),
		Skip:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// PlainStyles returns the no-color table. All lipgloss styles are
// identities; Prefix carries the state as bracket/arrow annotations.
func PlainStyles() Styles {
	return Styles{
		Normal:         lipgloss.NewStyle(),
		Cursor:         lipgloss.NewStyle(),
		Selected:       lipgloss.NewStyle(),
		CursorSelected: lipgloss.NewStyle(),
		Skip:           lipgloss.NewStyle(),
		Status:         lipgloss.NewStyle(),
		plain:          true,
	}
}

// style returns the lipgloss style for a state.
func (s Styles) style(st lineState) lipgloss.Style {
	switch st {
	case lineCursor:
		return s.Cursor
	case lineSelected:
		return s.Selected
	case lineCursorSelected:
		return s.CursorSelected
	case lineSkip:
		return s.Skip
	default:
		return s.Normal
	}
}

// Prefix returns the fixed text marker emitted before a line in this
// state. Non-empty only for the plain table; the ANSI table signals
// state through color alone.
func (s Styles) Prefix(st lineState, multiline bool) string {
	if !s.plain {
		return ""
	}
	if st == lineSkip {
		return "--- "
	}
	if !multiline {
		if st == lineCursor {
			return "> "
		}
		return "  "
	}
	switch st {
	case lineCursor:
		return "> [ ] "
	case lineSelected:
		return "  [X] "
	case lineCursorSelected:
		return "> [X] "
	default:
		return "  [ ] "
	}
}

// Render applies the state's style to an already-padded fragment.
func (s Styles) Render(st lineState, text string) string {
	return s.style(st).Render(text)
}
