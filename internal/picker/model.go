package picker

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runger/pickline/internal/config"
)

// sessionState represents the interactive phase of one session. The
// candidate list is acquired before the Model exists, so the Model
// starts Ready; a terminating key moves it to done or cancelled and
// quits the program.
type sessionState int

const (
	stateReady sessionState = iota
	stateDone
	stateCancelled
)

// Model is the Bubble Tea model for one picker session. It owns all
// mutable session state; the engines (navigation, selection, reorder,
// viewport) mutate it only through its methods.
type Model struct {
	lines   []string // Candidates as read; emitted verbatim on selection
	display []string // Render form: sanitized, trailing whitespace stripped
	opts    config.Options
	keys    KeyMap
	styles  Styles

	cursor      int         // Highlighted index
	offset      int         // First visible index
	selected    map[int]int // index -> selection order (0/absent = unselected)
	nextOrder   int         // Next selection-order number to assign
	lastTouched int         // Anchor for shift-range toggle; -1 before first toggle
	digits      string      // Pending numeric jump input

	maxDisplayWidth int // Widest display line, cached for compact cells

	width  int // Terminal width
	height int // Terminal height

	state  sessionState
	result Result
}

// NewModel creates a session model over a fixed candidate list. The
// cursor starts on the first line the skip predicate allows.
func NewModel(lines []string, opts config.Options) Model {
	opts.Normalize()

	owned := append([]string(nil), lines...)
	display := make([]string, len(owned))
	for i, s := range owned {
		display[i] = displayLine(s)
	}

	styles := DefaultStyles()
	if opts.NoColor {
		styles = PlainStyles()
	}

	m := Model{
		lines:       owned,
		display:     display,
		opts:        opts,
		keys:        DefaultKeyMap(),
		styles:      styles,
		selected:    make(map[int]int),
		nextOrder:   1,
		lastTouched: -1,
		width:       80,
		height:      24,
	}
	m.recomputeWidths()

	for i := range m.lines {
		if !m.shouldSkip(i) {
			m.cursor = i
			break
		}
	}
	m.ensureVisible()
	return m
}

// Result returns the session outcome. Zero until the session ends.
func (m Model) Result() Result {
	return m.result
}

// IsCancelled reports whether the user quit without choosing.
func (m Model) IsCancelled() bool {
	return m.state == stateCancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Each message is handled to completion
// before the runtime delivers the next one.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil
	}
	return m, nil
}

// handleKey dispatches one keypress to the engines.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	digit, isDigit := digitKey(msg)
	if !isDigit {
		m.digits = ""
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = stateCancelled
		m.result = Result{Canceled: true}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		return m.finish()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, true)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, true)

	case key.Matches(msg, m.keys.MoveLineUp):
		m.moveLine(-1)

	case key.Matches(msg, m.keys.MoveLineDown):
		m.moveLine(1)

	case key.Matches(msg, m.keys.RangeToggle):
		if !m.opts.Multiline {
			return m.finish()
		}
		m.toggle(m.cursor, true)

	case key.Matches(msg, m.keys.Toggle):
		if !m.opts.Multiline {
			return m.finish()
		}
		m.toggle(m.cursor, false)

	case isDigit:
		m.digits += digit
		m.jumpTo(m.digits)
	}

	return m, nil
}

// finish computes the output payload and ends the session.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.result = m.buildResult()
	m.state = stateDone
	return m, tea.Quit
}

// moveCursor moves the highlighted index by delta, clamped to the list.
// A skippable landing line is stepped past in the same direction when
// extend is set, or aborts the move when not (numeric jumps must land
// exactly). Reports whether the cursor moved.
func (m *Model) moveCursor(delta int, extend bool) bool {
	target := m.cursor + delta
	if target < 0 || target >= len(m.lines) {
		return false
	}
	if m.shouldSkip(target) {
		if !extend {
			return false
		}
		step := 1
		if delta < 0 {
			step = -1
		}
		for {
			target += step
			if target < 0 || target >= len(m.lines) {
				return false
			}
			if !m.shouldSkip(target) {
				break
			}
		}
	}
	m.cursor = target
	m.ensureVisible()
	return true
}

// jumpTo interprets accumulated digit input as an absolute index.
// Anything that is not a plain ASCII number, or is out of range, or
// lands on a skippable line, is silently ignored.
func (m *Model) jumpTo(input string) {
	if input == "" || !isASCIIDigits(input) {
		return
	}
	target, err := strconv.Atoi(input)
	if err != nil || target >= len(m.lines) {
		return
	}
	m.moveCursor(target-m.cursor, false)
}

// isASCIIDigits reports whether s consists only of ASCII digits.
func isASCIIDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// digitKey extracts a single typed ASCII digit from a key message.
func digitKey(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return "", false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return "", false
	}
	return string(r), true
}

// View implements tea.Model. The frame is the visible list window plus
// one status row; an ended session renders empty so the runtime clears
// the last frame on teardown.
func (m Model) View() string {
	if m.state != stateReady {
		return ""
	}

	var b strings.Builder
	per := m.perRow()
	end := m.offset + m.visibleItems()
	if end > len(m.lines) {
		end = len(m.lines)
	}

	if m.opts.Compact {
		for row := m.offset; row < end; row += per {
			rowEnd := row + per
			if rowEnd > end {
				rowEnd = end
			}
			for i := row; i < rowEnd; i++ {
				b.WriteString(m.formatCell(i))
			}
			b.WriteRune('\n')
		}
	} else {
		for i := m.offset; i < end; i++ {
			b.WriteString(m.formatLine(i))
			b.WriteRune('\n')
		}
	}

	b.WriteString(m.formatStatus())
	return b.String()
}
