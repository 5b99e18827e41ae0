package picker

import (
	"strings"

	"github.com/runger/pickline/internal/config"
)

// ShouldSkip reports whether the cursor must not stop on a line. It is
// evaluated against the display form of the line, so a line of pure
// whitespace counts as blank.
func ShouldSkip(line string, opts config.Options) bool {
	if opts.SkipBlanks && line == "" {
		return true
	}
	if opts.SkipChar != "" && strings.HasPrefix(line, opts.SkipChar) {
		return true
	}
	return false
}

// shouldSkip applies the predicate to candidate i.
func (m *Model) shouldSkip(i int) bool {
	return ShouldSkip(m.display[i], m.opts)
}
