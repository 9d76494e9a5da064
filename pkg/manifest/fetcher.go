package manifest

import (
	"context"

	"github.com/pkg/errors"

	"github.com/chart-tools/chartpick/internal/git"
	log "github.com/chart-tools/chartpick/pkg/log"
)

// Fetch retrieves the manifest committed at revision and parses it.
//
// Retrieval failures surface as a *git.RetrievalError (reachable through
// errors.As) carrying the revision and git's diagnostic. Parse failures are
// wrapped with the revision so the user can tell which side of the merge
// held the malformed document.
func Fetch(ctx context.Context, client git.ClientInterface, revision, path string) (Manifest, error) {
	log.Debug("fetching manifest", "revision", revision, "path", path)

	content, err := client.ShowFile(ctx, revision, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve manifest")
	}

	m, err := Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse manifest at revision %q", revision)
	}

	return m, nil
}
