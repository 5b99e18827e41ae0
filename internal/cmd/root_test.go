package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("a\nb\n\nc\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)
}

func TestReadLines_NoTrailingNewline(t *testing.T) {
	lines, err := readLines(strings.NewReader("a\nb"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestReadLines_Empty(t *testing.T) {
	lines, err := readLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestDefaultOpts_PrependsEnvFlags(t *testing.T) {
	t.Setenv("PICKLINE_DEFAULT_OPTS", "--no-color -m")
	args := defaultOpts([]string{"--skip-blanks"})
	assert.Equal(t, []string{"--no-color", "-m", "--skip-blanks"}, args)
}

func TestDefaultOpts_QuotedValues(t *testing.T) {
	t.Setenv("PICKLINE_DEFAULT_OPTS", `-s "#"`)
	args := defaultOpts(nil)
	assert.Equal(t, []string{"-s", "#"}, args)
}

func TestDefaultOpts_MalformedEnvIgnored(t *testing.T) {
	t.Setenv("PICKLINE_DEFAULT_OPTS", `-s "unterminated`)
	args := defaultOpts([]string{"-m"})
	assert.Equal(t, []string{"-m"}, args)
}

func TestDefaultOpts_Unset(t *testing.T) {
	t.Setenv("PICKLINE_DEFAULT_OPTS", "")
	args := defaultOpts([]string{"-m"})
	assert.Equal(t, []string{"-m"}, args)
}

func TestVersionCommand(t *testing.T) {
	var out strings.Builder
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "pickline")
	assert.Contains(t, out.String(), "commit:")
}
