package cmd

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := GetVersion()
	SetVersion(v)
	t.Cleanup(func() { SetVersion(original) })
}

func TestVersionCommand(t *testing.T) {
	withVersion(t, "1.2.3-test")

	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "oauthrest version 1.2.3-test", lines[0])
	assert.Contains(t, lines[1], runtime.Version())
}

func TestVersionCommand_Short(t *testing.T) {
	withVersion(t, "1.2.3-test")

	out, _, err := executeCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-test\n", out)
}

func TestVersionCommand_EmptyVersionIsDev(t *testing.T) {
	withVersion(t, "")

	out, _, err := executeCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestVersionFlagMatchesCommand(t *testing.T) {
	withVersion(t, "2.0.0")

	flagOut, _, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "oauthrest version 2.0.0\n", flagOut)

	cmdOut, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cmdOut, flagOut), "version command should start with the --version line")
}

func TestVersionCommand_RejectsArgs(t *testing.T) {
	_, _, err := executeCommand(t, "version", "extra")
	assert.Error(t, err)
}
