package picker

import (
	"strconv"
	"strings"
)

// Result is the outcome of one picker session. Embedded callers consume
// the typed fields; the CLI joins them with Output. Exactly one of
// Values and Indices is populated on a successful finish, per the
// index-output option.
type Result struct {
	Canceled bool
	Values   []string
	Indices  []int
}

// Empty reports whether the session produced nothing to emit.
func (r Result) Empty() bool {
	return len(r.Values) == 0 && len(r.Indices) == 0
}

// Output renders the result as the process output payload: values or
// indices, newline-joined. Empty results render as the empty string.
func (r Result) Output() string {
	if len(r.Indices) > 0 {
		parts := make([]string, len(r.Indices))
		for i, n := range r.Indices {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, "\n")
	}
	return strings.Join(r.Values, "\n")
}

// buildResult computes the final payload from the session state.
//
//	index  multi  order   result
//	 no     no     -      highlighted line's text
//	 no     yes    no     selected lines, list order
//	 no     yes    yes    selected lines, pick order
//	 yes    no     -      highlighted index
//	 yes    yes    no     selected indices, list order
//	 yes    yes    yes    selected indices, pick order
func (m *Model) buildResult() Result {
	if !m.opts.Multiline {
		if m.opts.OutputIndex {
			return Result{Indices: []int{m.cursor}}
		}
		return Result{Values: []string{m.lines[m.cursor]}}
	}

	var idx []int
	if m.opts.PreserveOrder {
		idx = m.selectedByOrder()
	} else {
		idx = m.selectedByIndex()
	}

	if m.opts.OutputIndex {
		return Result{Indices: idx}
	}
	values := make([]string, len(idx))
	for i, n := range idx {
		values[i] = m.lines[n]
	}
	return Result{Values: values}
}
