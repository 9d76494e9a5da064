// Package version provides the chartpick build version and a helper for
// reporting the version of the external git binary the tool depends on.
package version

import (
	"os/exec"
	"strings"

	"github.com/chart-tools/chartpick/pkg/exitcodes"
	"github.com/pkg/errors"
)

// BinaryVersion is the chartpick release version, overridable at build time
// via -ldflags.
var BinaryVersion = "0.1.0"

// Variable for exec.Command to support mocking in tests
var execCommand = exec.Command

// parseGitVersionString extracts the core version (e.g., "2.39.2") from the
// output of `git version` (e.g., "git version 2.39.2.windows.1\n").
func parseGitVersionString(output string) string {
	parsed := strings.TrimSpace(output)
	parsed = strings.TrimPrefix(parsed, "git version ")
	return parsed
}

// GitVersion reports the version of the git binary chartpick will invoke.
// An empty binary name uses "git" from PATH.
func GitVersion(binary string) (string, error) {
	if binary == "" {
		binary = "git"
	}

	cmd := execCommand(binary, "version")
	output, err := cmd.Output()
	if err != nil {
		return "", &exitcodes.ExitCodeError{
			Code: exitcodes.ExitGeneralRuntimeError,
			Err:  errors.Wrapf(err, "failed to run %s version", binary),
		}
	}

	return parseGitVersionString(string(output)), nil
}
