package picker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/pickline/internal/config"
)

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestTabAdvance(t *testing.T) {
	tests := []struct {
		w    int
		want int
	}{
		{0, 8},
		{1, 8},
		{7, 8},
		{8, 16},
		{9, 16},
		{15, 16},
		{16, 24},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tabAdvance(tt.w), "tabAdvance(%d)", tt.w)
	}
}

func TestVisibleRows_ReservesChrome(t *testing.T) {
	m := newTestModel(numberedLines(5), config.Options{})
	m.height = 10
	assert.Equal(t, 8, m.visibleRows())

	m.height = 1
	assert.Equal(t, 1, m.visibleRows(), "never less than one row")
}

func TestEnsureVisible_ScrollsDown(t *testing.T) {
	m := newTestModel(numberedLines(30), config.Options{})
	require.Equal(t, 8, m.visibleRows())

	m.cursor = 20
	m.ensureVisible()
	assert.Equal(t, 13, m.offset, "cursor becomes the last visible row")
	assert.Equal(t, 20, m.offset+m.visibleItems()-1)
}

func TestEnsureVisible_ScrollsUpToCursor(t *testing.T) {
	m := newTestModel(numberedLines(30), config.Options{})
	m.cursor = 20
	m.ensureVisible()

	m.cursor = 5
	m.ensureVisible()
	assert.Equal(t, 5, m.offset, "offset pulls down to the cursor")
}

func TestEnsureVisible_StableWhenInside(t *testing.T) {
	m := newTestModel(numberedLines(30), config.Options{})
	m.cursor = 20
	m.ensureVisible()
	before := m.offset

	m.cursor = 15
	m.ensureVisible()
	assert.Equal(t, before, m.offset)
}

func TestPerRow_ListLayoutIsOne(t *testing.T) {
	m := newTestModel(numberedLines(5), config.Options{})
	assert.Equal(t, 1, m.perRow())
}

func TestPerRow_CompactPacksByWidestCell(t *testing.T) {
	m := newTestModel([]string{"ab", "cd", "ef"}, config.Options{Compact: true})
	m.width = 40

	// Widest display is 2 columns, color table has no marker overhead:
	// cells advance 8, five per 40-column row.
	assert.Equal(t, 8, m.cellAdvance())
	assert.Equal(t, 5, m.perRow())
}

func TestPerRow_CompactNeverZero(t *testing.T) {
	m := newTestModel([]string{"this line is much wider than the terminal"}, config.Options{Compact: true})
	m.width = 10
	assert.Equal(t, 1, m.perRow())
}

func TestPerRow_PlainMarkersWidenCells(t *testing.T) {
	opts := config.Options{Compact: true, Multiline: true, NoColor: true}
	m := newTestModel([]string{"ab", "cd"}, opts)
	m.width = 40

	// 2 columns of text plus the 6-column "> [X] " marker: advance 16.
	assert.Equal(t, 16, m.cellAdvance())
	assert.Equal(t, 2, m.perRow())
}

func TestEnsureVisible_CompactOffsetRowAligned(t *testing.T) {
	m := newTestModel(numberedLines(100), config.Options{Compact: true})
	m.width = 40
	m.height = 4
	per := m.perRow()
	require.Greater(t, per, 1)

	for _, cursor := range []int{0, 13, 57, 99, 3} {
		m.cursor = cursor
		m.ensureVisible()
		assert.Zero(t, m.offset%per, "offset must stay row-aligned (cursor %d)", cursor)
		assert.GreaterOrEqual(t, m.cursor, m.offset)
		assert.Less(t, m.cursor, m.offset+m.visibleItems())
	}
}

func TestRecomputeWidths_TracksWidestDisplayLine(t *testing.T) {
	m := newTestModel([]string{"ab", "abcdef", "c"}, config.Options{})
	assert.Equal(t, 6, m.maxDisplayWidth)
}
