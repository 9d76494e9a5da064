package version

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chart-tools/chartpick/pkg/exitcodes"
)

func TestParseGitVersionString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "git version 2.39.2\n", "2.39.2"},
		{"platform suffix", "git version 2.39.2.windows.1\n", "2.39.2.windows.1"},
		{"no newline", "git version 2.43.0", "2.43.0"},
		{"unexpected format passes through", "2.39.2", "2.39.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseGitVersionString(tt.input))
		})
	}
}

func TestGitVersionMocked(t *testing.T) {
	originalExec := execCommand
	defer func() { execCommand = originalExec }()

	execCommand = func(_ string, _ ...string) *exec.Cmd {
		return exec.Command("echo", "git version 2.39.2")
	}

	v, err := GitVersion("")
	require.NoError(t, err)
	assert.Equal(t, "2.39.2", v)
}

func TestGitVersionMissingBinary(t *testing.T) {
	_, err := GitVersion("chartpick-test-no-such-binary")
	require.Error(t, err)

	code, ok := exitcodes.IsExitCodeError(err)
	assert.True(t, ok)
	assert.Equal(t, exitcodes.ExitGeneralRuntimeError, code)
}
