// Package pickline embeds the interactive line picker in a host
// program. The host supplies the candidate list and options and
// receives the typed result; the picker owns the terminal for the
// duration of the call.
//
//	res, err := pickline.Pick(lines, pickline.Options{Multiline: true})
//
// Pick blocks until the session ends; run it in a goroutine for a
// deferred result. Only one session may be active per process.
package pickline

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runger/pickline/internal/config"
	"github.com/runger/pickline/internal/picker"
)

// Options configures one picker session.
type Options = config.Options

// Result is the session outcome. Values or Indices hold the ordered
// selection; single-select results carry exactly one element.
type Result = picker.Result

// ErrSessionActive is returned when a session is requested while
// another one is running in this process.
var ErrSessionActive = picker.ErrSessionActive

// ErrNoCandidates is returned for an empty candidate list.
var ErrNoCandidates = picker.ErrNoCandidates

// Pick runs one interactive session over lines and returns the user's
// choice. Program options may override the terminal handles
// (tea.WithInput/WithOutput); by default the session uses the standard
// streams, so hosts whose stdin/stdout are not the terminal should pass
// their tty explicitly.
func Pick(lines []string, opts Options, progOpts ...tea.ProgramOption) (Result, error) {
	return picker.Run(lines, opts, progOpts...)
}
