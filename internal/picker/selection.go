package picker

import "sort"

// toggle flips membership of a line in the selection set. With
// shiftExtend, every line between the last-touched anchor and index
// (inclusive) is set to the target's pre-toggle opposite: the whole
// range selects if the target was unselected, deselects otherwise.
// No-op when multi-select is disabled; the key is handled as a finish
// in that mode before reaching here.
func (m *Model) toggle(index int, shiftExtend bool) {
	if !m.opts.Multiline || index < 0 || index >= len(m.lines) {
		return
	}

	anchor := m.lastTouched
	if !shiftExtend || anchor < 0 || anchor == index {
		if m.selected[index] != 0 {
			delete(m.selected, index)
		} else {
			m.selected[index] = m.nextOrder
			m.nextOrder++
		}
	} else {
		selecting := m.selected[index] == 0
		step := 1
		if index < anchor {
			step = -1
		}
		for i := anchor; ; i += step {
			m.setSelected(i, selecting)
			if i == index {
				break
			}
		}
	}

	m.lastTouched = index
	if m.opts.PreserveOrder {
		m.renumber()
	}
}

// setSelected forces a line's membership, assigning the next order
// number when a line becomes newly selected.
func (m *Model) setSelected(i int, selected bool) {
	if !selected {
		delete(m.selected, i)
		return
	}
	if m.selected[i] == 0 {
		m.selected[i] = m.nextOrder
		m.nextOrder++
	}
}

// renumber reassigns selection-order numbers 1..N by existing order, so
// displayed numbers stay dense after deselect/reselect churn. The order
// counter resumes at N+1.
func (m *Model) renumber() {
	idx := m.selectedByOrder()
	for n, i := range idx {
		m.selected[i] = n + 1
	}
	m.nextOrder = len(idx) + 1
}

// selectedByOrder returns the selected indices sorted by their
// selection-order values ascending.
func (m *Model) selectedByOrder() []int {
	idx := make([]int, 0, len(m.selected))
	for i := range m.selected {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool {
		return m.selected[idx[a]] < m.selected[idx[b]]
	})
	return idx
}

// selectedByIndex returns the selected indices in list order.
func (m *Model) selectedByIndex() []int {
	idx := make([]int, 0, len(m.selected))
	for i := range m.selected {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}
