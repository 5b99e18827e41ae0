// Package picker implements the interactive line-selection session: the
// state machine over a fixed candidate list, its renderer, and the
// output shaping. One session owns the terminal for its whole lifetime;
// sessions are strictly one-shot and never concurrent.
package picker

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/runger/pickline/internal/config"
)

// ErrSessionActive is returned when a session is requested while
// another one owns the terminal.
var ErrSessionActive = errors.New("picker session already active")

// ErrNoCandidates is returned when the candidate list is empty.
var ErrNoCandidates = errors.New("no candidates to pick from")

// active guards against concurrent sessions within one process.
var active atomic.Bool

// Run owns one complete interactive session: it renders the list,
// processes keypresses until a terminating action, tears the frame
// down, and returns the outcome. It blocks for the session lifetime;
// hosts wanting a deferred result run it in a goroutine. Program
// options carry the terminal handles (tea.WithInput/WithOutput).
func Run(lines []string, opts config.Options, progOpts ...tea.ProgramOption) (Result, error) {
	if len(lines) == 0 {
		return Result{}, ErrNoCandidates
	}
	if !active.CompareAndSwap(false, true) {
		return Result{}, ErrSessionActive
	}
	defer active.Store(false)

	id := uuid.New()
	debugLog("session %s: %d candidates", id, len(lines))

	p := tea.NewProgram(NewModel(lines, opts), progOpts...)
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("session %s: %w", id, err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("session %s: unexpected model type %T", id, final)
	}

	debugLog("session %s: finished (cancelled=%v)", id, m.IsCancelled())
	return m.Result(), nil
}

// debugLog logs a message to stderr when PICKLINE_DEBUG=1.
func debugLog(format string, args ...any) {
	if os.Getenv("PICKLINE_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "pickline: debug: "+format+"\n", args...)
	}
}
