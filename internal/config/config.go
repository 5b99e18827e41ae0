// Package config provides option resolution for pickline.
//
// Options are resolved once per session, in increasing precedence:
// built-in defaults, the optional config file, PICKLINE_DEFAULT_OPTS,
// then explicit command-line flags. The resolved record is immutable
// for the lifetime of the session.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Options is the resolved configuration for one picker session.
type Options struct {
	Multiline     bool   `yaml:"multiline"`      // Multi-select mode
	OutputIndex   bool   `yaml:"output_index"`   // Emit indices instead of text
	HideNumbers   bool   `yaml:"hide_numbers"`   // Suppress index prefix
	PreserveOrder bool   `yaml:"preserve_order"` // Order output by pick order
	Compact       bool   `yaml:"compact"`        // Tab-packed layout
	SkipBlanks    bool   `yaml:"skip_blanks"`    // Cursor cannot stop on empty lines
	SkipChar      string `yaml:"skip_char"`      // Cursor cannot stop on lines starting with this character
	NoColor       bool   `yaml:"no_color"`       // Bracket annotations instead of ANSI styles
	LockLines     bool   `yaml:"lock_lines"`     // Disable the reorder keys
}

// DefaultOptions returns the built-in defaults (everything off).
func DefaultOptions() Options {
	return Options{}
}

// Load resolves options from the default config file path.
func Load() (Options, error) {
	return LoadFromFile(DefaultPaths().ConfigFile())
}

// LoadFromFile loads option defaults from the specified yaml file.
// A missing file is not an error; defaults are returned.
func LoadFromFile(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid config: %w", err)
	}

	return opts, nil
}

// Validate checks option values that cannot be expressed by their types.
func (o *Options) Validate() error {
	if utf8.RuneCountInString(o.SkipChar) > 1 {
		return fmt.Errorf("skip_char must be a single character (got %q)", o.SkipChar)
	}
	return nil
}

// Normalize applies cross-option coupling rules. Index output locks line
// reordering: swapping lines after indices have been promised would make
// the reported indices point at different text.
func (o *Options) Normalize() {
	if o.OutputIndex {
		o.LockLines = true
	}
}
