package picker

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/pickline/internal/config"
)

func plainModel(lines []string, opts config.Options) Model {
	opts.NoColor = true
	return newTestModel(lines, opts)
}

func TestLineState_PriorityOrder(t *testing.T) {
	m := plainModel([]string{"a", "", "c", "d"}, config.Options{Multiline: true, SkipBlanks: true})
	m.toggle(2, false)
	m.toggle(0, false)
	m.cursor = 0

	assert.Equal(t, lineCursorSelected, m.lineState(0))
	assert.Equal(t, lineSkip, m.lineState(1))
	assert.Equal(t, lineSelected, m.lineState(2))
	assert.Equal(t, lineNormal, m.lineState(3))

	m.cursor = 3
	assert.Equal(t, lineCursor, m.lineState(3))
}

func TestFormatLine_PlainMarkers(t *testing.T) {
	m := plainModel([]string{"alpha", "beta", ""}, config.Options{SkipBlanks: true})

	assert.True(t, strings.HasPrefix(m.formatLine(0), "> 0: alpha"))
	assert.True(t, strings.HasPrefix(m.formatLine(1), "  1: beta"))
	assert.True(t, strings.HasPrefix(m.formatLine(2), "--- 2: "))
}

func TestFormatLine_MultilineCheckboxes(t *testing.T) {
	m := plainModel([]string{"alpha", "beta"}, config.Options{Multiline: true})
	m.toggle(1, false)

	assert.True(t, strings.HasPrefix(m.formatLine(0), "> [ ] 0: alpha"))
	assert.True(t, strings.HasPrefix(m.formatLine(1), "  [X] 1: beta"))
}

func TestFormatLine_HideNumbers(t *testing.T) {
	m := plainModel([]string{"alpha"}, config.Options{HideNumbers: true})
	assert.True(t, strings.HasPrefix(m.formatLine(0), "> alpha"))
}

func TestFormatLine_PreserveOrderAnnotation(t *testing.T) {
	m := plainModel([]string{"a", "b"}, config.Options{Multiline: true, PreserveOrder: true})
	m.toggle(1, false)
	m.toggle(0, false)

	assert.Contains(t, m.formatLine(1), "(1) 1: b")
	assert.Contains(t, m.formatLine(0), "(2) 0: a")
}

func TestFormatLine_PadsToTerminalWidth(t *testing.T) {
	m := plainModel([]string{"short", strings.Repeat("x", 200)}, config.Options{})

	for i := range m.lines {
		got := m.formatLine(i)
		assert.Equal(t, m.width, runewidth.StringWidth(got), "row %d must fill the width exactly", i)
	}
}

func TestFormatLine_TruncatesWideRunes(t *testing.T) {
	m := plainModel([]string{strings.Repeat("界", 60)}, config.Options{})
	got := m.formatLine(0)
	assert.LessOrEqual(t, runewidth.StringWidth(got), m.width)
}

func TestFormatLine_StripsTrailingWhitespaceOnly(t *testing.T) {
	m := plainModel([]string{"  lead and trail   "}, config.Options{HideNumbers: true})
	assert.Equal(t, "  lead and trail", m.display[0])
	assert.True(t, strings.HasPrefix(m.formatLine(0), ">   lead and trail"))
}

func TestFormatCell_TabTerminatedWithoutNumbering(t *testing.T) {
	m := plainModel([]string{"aa", "bb"}, config.Options{Compact: true, PreserveOrder: true, Multiline: true})
	m.toggle(0, false)

	cell := m.formatCell(0)
	require.True(t, strings.HasSuffix(cell, "\t"))
	assert.NotContains(t, cell, "0:")
	assert.NotContains(t, cell, "(1)")

	// Padded so the tab lands every cell on the same advance.
	body := strings.TrimSuffix(cell, "\t")
	assert.Equal(t, m.cellAdvance()-1, runewidth.StringWidth(body))
}

func TestFormatStatus_CountsAndJumpBuffer(t *testing.T) {
	m := plainModel([]string{"a", "b", "c"}, config.Options{Multiline: true})
	m.toggle(0, false)
	m.digits = "2"

	s := m.formatStatus()
	assert.Contains(t, s, "1/3")
	assert.Contains(t, s, "1 selected")
	assert.Contains(t, s, "jump:2")
}

func TestView_ListFrame(t *testing.T) {
	m := plainModel([]string{"a", "b", "c"}, config.Options{})

	frame := m.View()
	rows := strings.Split(frame, "\n")
	require.Len(t, rows, 4, "three list rows plus status")
	assert.True(t, strings.HasPrefix(rows[0], "> 0: a"))
	assert.True(t, strings.HasPrefix(rows[1], "  1: b"))
	assert.Contains(t, rows[3], "1/3")
}

func TestView_WindowsLongLists(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "x"
	}
	m := plainModel(lines, config.Options{})

	frame := m.View()
	rows := strings.Split(frame, "\n")
	assert.Len(t, rows, m.visibleRows()+1)
}

func TestView_CompactPacksRows(t *testing.T) {
	lines := []string{"aa", "bb", "cc", "dd", "ee", "ff"}
	m := plainModel(lines, config.Options{Compact: true})
	m.width = 40
	m.height = 10
	m.ensureVisible()

	per := m.perRow()
	require.Greater(t, per, 1, "narrow candidates must pack")

	frame := m.View()
	rows := strings.Split(frame, "\n")
	// 6 candidates at per-row packing, plus the status row.
	wantRows := (len(lines)+per-1)/per + 1
	assert.Len(t, rows, wantRows)
	assert.Equal(t, per, strings.Count(rows[0], "\t"))
}
