package picker

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ansiRE matches ANSI escape sequences:
//   - CSI sequences: ESC [ ... final_byte  (covers SGR like \x1b[31m)
//   - OSC sequences: ESC ] ... (ST | BEL)
//   - Charset sequences: ESC ( B, ESC ) B, etc.
//   - Other two-byte escapes: ESC followed by a single byte in [#()*+\-./]
var ansiRE = regexp.MustCompile(`\x1b(?:` +
	`\[[0-9;]*[A-Za-z]` + // CSI sequences (SGR, cursor, etc.)
	`|` +
	`\].*?(?:\x1b\\|\x07)` + // OSC sequences (terminated by ST or BEL)
	`|` +
	`[()][A-B0-2]` + // Charset designation sequences
	`|` +
	`[#()*+\-./][A-Za-z0-9]` + // Other two-byte escape sequences
	`)`)

// StripANSI removes ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// ValidateUTF8 replaces invalid UTF-8 byte sequences with the Unicode
// replacement character (U+FFFD).
func ValidateUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(utf8.RuneError)
			i++
		} else {
			b.WriteRune(r)
			i += size
		}
	}
	return b.String()
}

// displayLine prepares a raw candidate for rendering: escape sequences
// and control characters are removed (piped input may carry either),
// invalid UTF-8 is replaced, and trailing whitespace is stripped.
// Leading whitespace is preserved; the raw line is what gets emitted on
// selection.
func displayLine(s string) string {
	s = StripANSI(s)
	s = ValidateUTF8(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}
