// Package git provides the version-control read capability chartpick depends
// on: retrieving the content of a file as committed at a given revision.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	log "github.com/chart-tools/chartpick/pkg/log"
)

// DefaultBinary is the git executable used when no override is configured.
const DefaultBinary = "git"

// ClientInterface defines the version-control operations chartpick needs.
// It is deliberately narrow so tests can substitute an in-memory fake
// without a real git repository.
type ClientInterface interface {
	// ShowFile returns the exact content of path as committed at revision.
	ShowFile(ctx context.Context, revision, path string) ([]byte, error)
}

// RealClient implements ClientInterface by shelling out to the git binary.
type RealClient struct {
	// Binary is the git executable to invoke. Empty means DefaultBinary.
	Binary string
	// RepoDir is passed to git via -C so chartpick can operate on a
	// repository other than the current working directory. Empty means
	// the current directory.
	RepoDir string
}

// NewRealClient creates a RealClient for the given git binary and repository
// directory. Either argument may be empty to take the default.
func NewRealClient(binary, repoDir string) *RealClient {
	if binary == "" {
		binary = DefaultBinary
	}
	return &RealClient{Binary: binary, RepoDir: repoDir}
}

// ShowFile runs `git show <revision>:<path>` and returns stdout. On a
// non-zero exit it returns a *RetrievalError carrying the revision and git's
// stderr diagnostic.
func (c *RealClient) ShowFile(ctx context.Context, revision, path string) ([]byte, error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	args := showArgs(c.RepoDir, revision, path)
	log.Debug("executing git", "binary", binary, "args", strings.Join(args, " "))

	// #nosec G204 -- revision and path come from the CLI invocation; this
	// tool exists to pass them through to git.
	cmd := exec.CommandContext(ctx, binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &RetrievalError{
			Revision: revision,
			Path:     path,
			Output:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}

	return stdout.Bytes(), nil
}

// showArgs builds the argument list for a git show invocation.
func showArgs(repoDir, revision, path string) []string {
	var args []string
	if repoDir != "" {
		args = append(args, "-C", repoDir)
	}
	return append(args, "show", revision+":"+path)
}
