package picker

// moveLine swaps the highlighted candidate with its neighbor and moves
// the cursor along with the swapped content. The target is clamped at
// list boundaries with no skip-awareness. No-op when reordering is
// locked (always the case in index-output mode, enforced at option
// resolution).
func (m *Model) moveLine(delta int) {
	if m.opts.LockLines {
		return
	}
	target := m.cursor + delta
	if target < 0 {
		target = 0
	}
	if target >= len(m.lines) {
		target = len(m.lines) - 1
	}
	if target == m.cursor {
		return
	}

	cur := m.cursor
	m.lines[cur], m.lines[target] = m.lines[target], m.lines[cur]
	m.display[cur], m.display[target] = m.display[target], m.display[cur]

	// Selection follows content: a picked line stays picked when moved.
	curOrder, targetOrder := m.selected[cur], m.selected[target]
	m.setOrder(cur, targetOrder)
	m.setOrder(target, curOrder)
	if m.lastTouched == cur {
		m.lastTouched = target
	} else if m.lastTouched == target {
		m.lastTouched = cur
	}

	m.cursor = target
	m.ensureVisible()
}

// setOrder writes a raw selection-order value, removing the entry when
// the value is zero.
func (m *Model) setOrder(i, order int) {
	if order == 0 {
		delete(m.selected, i)
	} else {
		m.selected[i] = order
	}
}
