package picker

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// lineState resolves the presentation state of candidate i. Exactly one
// state applies, in priority order: cursor+selected, cursor, selected,
// unselectable, normal.
func (m *Model) lineState(i int) lineState {
	selected := m.selected[i] != 0
	switch {
	case i == m.cursor && selected:
		return lineCursorSelected
	case i == m.cursor:
		return lineCursor
	case selected:
		return lineSelected
	case m.shouldSkip(i):
		return lineSkip
	default:
		return lineNormal
	}
}

// formatLine renders candidate i into one full-width row fragment
// (without trailing newline). The row is truncated and right-padded to
// exactly the terminal width so a background style cannot bleed past
// the frame; lipgloss closes the style with a reset.
func (m *Model) formatLine(i int) string {
	st := m.lineState(i)
	prefix := m.styles.Prefix(st, m.opts.Multiline)

	var b strings.Builder
	if order := m.selected[i]; m.opts.PreserveOrder && order != 0 {
		fmt.Fprintf(&b, "(%d) ", order)
	}
	if !m.opts.HideNumbers {
		fmt.Fprintf(&b, "%d: ", i)
	}
	b.WriteString(m.display[i])

	budget := m.width - runewidth.StringWidth(prefix)
	if budget < 1 {
		budget = 1
	}
	content := runewidth.Truncate(b.String(), budget, "")
	content = runewidth.FillRight(content, budget)

	return m.styles.Render(st, prefix+content)
}

// formatCell renders candidate i as one compact cell: no numbering or
// ordering prefixes, padded so the terminating tab lands every cell on
// the same uniform advance.
func (m *Model) formatCell(i int) string {
	st := m.lineState(i)
	prefix := m.styles.Prefix(st, m.opts.Multiline)

	// Pad to advance-1 so the tab advances exactly one column.
	budget := m.cellAdvance() - 1 - runewidth.StringWidth(prefix)
	if budget < 1 {
		budget = 1
	}
	content := runewidth.Truncate(m.display[i], budget, "")
	content = runewidth.FillRight(content, budget)

	return m.styles.Render(st, prefix+content) + "\t"
}

// formatStatus renders the one-line footer chrome.
func (m *Model) formatStatus() string {
	s := fmt.Sprintf("%d/%d", m.cursor+1, len(m.lines))
	if m.opts.Multiline {
		s += fmt.Sprintf("  %d selected", len(m.selected))
	}
	if m.digits != "" {
		s += "  jump:" + m.digits
	}
	return m.styles.Status.Render(s)
}
