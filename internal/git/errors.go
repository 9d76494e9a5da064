package git

import "fmt"

// RetrievalError reports that git could not produce the requested file at
// the requested revision. It carries the revision and git's own diagnostic
// so the user sees which side of the merge failed and why.
type RetrievalError struct {
	Revision string
	Path     string
	Output   string // trimmed stderr from the git invocation
	Err      error  // underlying exec error (exit status, binary not found)
}

func (e *RetrievalError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("retrieving %s at revision %q: %v: %s", e.Path, e.Revision, e.Err, e.Output)
	}
	return fmt.Sprintf("retrieving %s at revision %q: %v", e.Path, e.Revision, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
