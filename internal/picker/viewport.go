package picker

import "github.com/mattn/go-runewidth"

const (
	// chromeRows is reserved for the status line and bottom margin.
	chromeRows = 2

	// tabStop is the terminal tab advance used by the compact layout.
	tabStop = 8
)

// tabAdvance returns the column a tab lands on after content of width w:
// the next multiple of tabStop strictly past w.
func tabAdvance(w int) int {
	return (w/tabStop + 1) * tabStop
}

// perRow returns how many candidates share one terminal row. The list
// layout is one per row; the compact layout packs uniform tab-aligned
// cells sized by the widest candidate.
func (m *Model) perRow() int {
	if !m.opts.Compact {
		return 1
	}
	n := m.width / m.cellAdvance()
	if n < 1 {
		n = 1
	}
	return n
}

// cellAdvance returns the on-screen width of one compact cell,
// tab terminator included.
func (m *Model) cellAdvance() int {
	w := m.maxDisplayWidth + m.maxPrefixWidth()
	return tabAdvance(w)
}

// maxPrefixWidth returns the widest marker any line state can emit.
func (m *Model) maxPrefixWidth() int {
	if !m.styles.plain {
		return 0
	}
	if m.opts.Multiline {
		return 6 // "> [X] "
	}
	return 4 // "--- "
}

// visibleRows returns the terminal rows available to the list.
func (m *Model) visibleRows() int {
	r := m.height - chromeRows
	if r < 1 {
		r = 1
	}
	return r
}

// visibleItems returns how many candidates fit in the viewport.
func (m *Model) visibleItems() int {
	return m.visibleRows() * m.perRow()
}

// ensureVisible adjusts the scroll offset so the cursor row is drawn.
// The offset stays aligned to a row boundary so compact rows never
// shear when scrolling. Moving above the window pulls the offset down
// to the cursor's row; moving below pushes it up so the cursor's row is
// the last visible one.
func (m *Model) ensureVisible() {
	per := m.perRow()
	m.offset -= m.offset % per
	if m.cursor < m.offset {
		m.offset = m.cursor - m.cursor%per
	}
	if m.cursor >= m.offset+m.visibleItems() {
		m.offset = m.cursor - m.cursor%per - m.visibleItems() + per
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// recomputeWidths refreshes the cached widest display width. The cache
// depends only on the candidate set, which is fixed after construction
// (reorder swaps positions, never content).
func (m *Model) recomputeWidths() {
	w := 0
	for _, s := range m.display {
		if sw := runewidth.StringWidth(s); sw > w {
			w = sw
		}
	}
	m.maxDisplayWidth = w
}
