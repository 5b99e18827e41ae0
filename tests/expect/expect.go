//go:build !windows

// Package expect provides end-to-end testing of the pickline binary
// under a pseudo-terminal, using go-expect.
//
// The binary separates its streams: candidates arrive on stdin, the
// result leaves on stdout, and the interactive frames are drawn on the
// controlling terminal. The harness therefore wires stderr to the PTY
// and makes it the controlling terminal, keeping stdin/stdout as plain
// pipes for data.
package expect

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	expect "github.com/Netflix/go-expect"
	"github.com/creack/pty"
)

// Key constants for special keys (ANSI escape sequences).
const (
	KeyUp    = "\x1b[A"
	KeyDown  = "\x1b[B"
	KeyEnter = "\r"
	KeyCtrlC = "\x03"
)

// PickerSession drives one pickline process under a PTY.
type PickerSession struct {
	Console *expect.Console
	Timeout time.Duration

	cmd    *exec.Cmd
	stdout bytes.Buffer
}

// NewSession starts the pickline binary at binPath with the given
// flags, feeding input as the candidate list.
func NewSession(binPath string, input string, args ...string) (*PickerSession, error) {
	console, err := expect.NewConsole(expect.WithDefaultTimeout(5 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to create console: %w", err)
	}
	// A fresh PTY reports a 0x0 window; give it a usable size so the
	// binary's terminal-width preflight passes.
	if err := pty.Setsize(console.Tty(), &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		console.Close()
		return nil, fmt.Errorf("failed to set pty size: %w", err)
	}

	s := &PickerSession{
		Console: console,
		Timeout: 5 * time.Second,
	}

	cmd := exec.Command(binPath, args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &s.stdout
	cmd.Stderr = console.Tty()
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	// Make the PTY the controlling terminal so /dev/tty resolves to it.
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    2, // stderr, wired to the PTY slave
	}

	if err := cmd.Start(); err != nil {
		console.Close()
		return nil, fmt.Errorf("failed to start pickline: %w", err)
	}
	s.cmd = cmd
	return s, nil
}

// Send types keys into the picker. Delivery is paced: runes arriving
// in a single read are coalesced by the TUI into one paste-like key
// message, which drops discrete keystrokes sent back-to-back.
func (s *PickerSession) Send(keys string) error {
	_, err := s.Console.Send(keys)
	time.Sleep(50 * time.Millisecond)
	return err
}

// Expect waits for an exact string in the rendered frames.
func (s *PickerSession) Expect(str string) (string, error) {
	return s.Console.ExpectString(str)
}

// Wait blocks until the process exits, returning its exit code and the
// data written to stdout.
func (s *PickerSession) Wait() (int, string, error) {
	err := s.cmd.Wait()
	code := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return -1, "", err
		}
		code = exitErr.ExitCode()
	}
	return code, s.stdout.String(), nil
}

// Close tears the session down.
func (s *PickerSession) Close() {
	if s.cmd != nil && s.cmd.Process != nil {
		s.cmd.Process.Kill()
		s.cmd.Wait()
	}
	s.Console.Close()
}

// BuildBinary compiles the pickline binary into dir and returns its
// path.
func BuildBinary(dir string) (string, error) {
	binPath := filepath.Join(dir, "pickline")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/pickline")
	cmd.Dir = moduleRoot()
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("go build failed: %v\n%s", err, out)
	}
	return binPath, nil
}

// moduleRoot walks up from the working directory to the go.mod.
func moduleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
