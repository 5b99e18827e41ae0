// Package cmd wires the pickline CLI: flag parsing, candidate
// acquisition from stdin, terminal preflight, and result emission. The
// interactive session itself lives in internal/picker.
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/shlex"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/runger/pickline/internal/config"
	"github.com/runger/pickline/internal/picker"
)

// Exit codes. These match the expectations of shell pipelines:
//
//	0 = selection made (use the result)
//	1 = cancelled by user
//	2 = environment fallback (no TTY, empty input, teardown failure)
const (
	exitSuccess   = 0
	exitCancelled = 1
	exitFallback  = 2
)

// errCancelled marks a user cancel so Execute can map it to its exit
// code without treating it as a failure to report.
var errCancelled = errors.New("cancelled")

// maxLineBytes caps a single candidate line read from stdin.
const maxLineBytes = 1 << 20

var rootCmd = &cobra.Command{
	Use:   "pickline",
	Short: "pick lines from stdin interactively",
	Long: `pickline - pick one or more lines from stdin interactively

Candidates are read from standard input to EOF; the picker then runs on
the controlling terminal and writes the chosen line(s) to standard
output, ready for use in a pipeline:

  ls | pickline | xargs open
  git branch | pickline -m -s '*' | xargs git branch -D`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// flagOpts mirrors config.Options one flag per field.
var flagOpts config.Options

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flagOpts.Multiline, "multiline", "m", false, "select multiple lines")
	f.BoolVarP(&flagOpts.OutputIndex, "index", "i", false, "output line indices instead of text (implies --lock-lines)")
	f.BoolVarP(&flagOpts.HideNumbers, "hide-numbers", "N", false, "hide the index prefix")
	f.BoolVarP(&flagOpts.PreserveOrder, "preserve-order", "o", false, "output selections in the order they were picked")
	f.BoolVarP(&flagOpts.Compact, "compact", "c", false, "tab-packed layout instead of one line per candidate")
	f.BoolVarP(&flagOpts.SkipBlanks, "skip-blanks", "b", false, "cursor cannot stop on blank lines")
	f.StringVarP(&flagOpts.SkipChar, "skip-char", "s", "", "cursor cannot stop on lines starting with this character")
	f.BoolVar(&flagOpts.NoColor, "no-color", false, "text annotations instead of ANSI colors")
	f.BoolVarP(&flagOpts.LockLines, "lock-lines", "l", false, "disable the line reorder keys")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.SetArgs(defaultOpts(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			return exitCancelled
		}
		fmt.Fprintf(os.Stderr, "pickline: %v\n", err)
		return exitFallback
	}
	return exitSuccess
}

// defaultOpts prepends flags from PICKLINE_DEFAULT_OPTS to argv, so
// explicit arguments win on conflict.
func defaultOpts(args []string) []string {
	env := os.Getenv("PICKLINE_DEFAULT_OPTS")
	if env == "" {
		return args
	}
	defaults, err := shlex.Split(env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pickline: ignoring malformed PICKLINE_DEFAULT_OPTS: %v\n", err)
		return args
	}
	return append(defaults, args...)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if err := checkTTY(); err != nil {
		return err
	}
	if err := checkTERM(); err != nil {
		return err
	}
	if err := checkTermWidth(); err != nil {
		return err
	}

	lines, err := readLines(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if len(lines) == 0 {
		return errors.New("no input lines")
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	// The TUI runs on /dev/tty: stdin carries the candidates and stdout
	// the result, so neither can host the interactive frames.
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("cannot open /dev/tty: %w", err)
	}

	// Stdout is usually a pipe here, which would make lipgloss fall
	// back to no color; detect the profile from the real tty instead.
	if !opts.NoColor {
		lipgloss.SetColorProfile(termenv.NewOutput(tty).ColorProfile())
	}

	result, runErr := picker.Run(lines, opts,
		tea.WithInput(tty),
		tea.WithOutput(tty),
	)

	// Teardown failure means the terminal may be left half-restored;
	// report it and exit with the fallback code.
	if closeErr := tty.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "pickline: warning: failed to release terminal: %v\n", closeErr)
		return fmt.Errorf("terminal teardown failed: %w", closeErr)
	}
	if runErr != nil {
		return runErr
	}

	if result.Canceled {
		return errCancelled
	}
	if out := result.Output(); out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// resolveOptions merges the config file defaults with explicit flags;
// a flag wins only when it was actually set.
func resolveOptions(cmd *cobra.Command) (config.Options, error) {
	opts, err := config.Load()
	if err != nil {
		return opts, err
	}

	f := cmd.Flags()
	if f.Changed("multiline") {
		opts.Multiline = flagOpts.Multiline
	}
	if f.Changed("index") {
		opts.OutputIndex = flagOpts.OutputIndex
	}
	if f.Changed("hide-numbers") {
		opts.HideNumbers = flagOpts.HideNumbers
	}
	if f.Changed("preserve-order") {
		opts.PreserveOrder = flagOpts.PreserveOrder
	}
	if f.Changed("compact") {
		opts.Compact = flagOpts.Compact
	}
	if f.Changed("skip-blanks") {
		opts.SkipBlanks = flagOpts.SkipBlanks
	}
	if f.Changed("skip-char") {
		opts.SkipChar = flagOpts.SkipChar
	}
	if f.Changed("no-color") {
		opts.NoColor = flagOpts.NoColor
	}
	if f.Changed("lock-lines") {
		opts.LockLines = flagOpts.LockLines
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	opts.Normalize()
	return opts, nil
}

// readLines reads the candidate list to EOF, one candidate per line.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
