//go:build !windows

package cmd

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// minTermWidth is the narrowest terminal the picker will try to draw on.
const minTermWidth = 20

// checkTTY verifies that /dev/tty is openable.
func checkTTY() error {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return fmt.Errorf("no TTY available: %w", err)
	}
	f.Close()
	return nil
}

// checkTERM verifies that the TERM environment variable is not "dumb".
func checkTERM() error {
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("TERM=dumb is not supported")
	}
	return nil
}

// checkTermWidth verifies the terminal is wide enough to draw a frame.
func checkTermWidth() error {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return fmt.Errorf("cannot check terminal width: %w", err)
	}
	defer f.Close()

	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("cannot get terminal size: %w", err)
	}
	if ws.Col < minTermWidth {
		return fmt.Errorf("terminal too narrow (%d columns, need at least %d)", ws.Col, minTermWidth)
	}
	return nil
}
