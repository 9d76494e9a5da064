package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chart-tools/chartpick/internal/git"
	"github.com/chart-tools/chartpick/pkg/exitcodes"
	"github.com/chart-tools/chartpick/pkg/fileutil"
	log "github.com/chart-tools/chartpick/pkg/log"
	"github.com/chart-tools/chartpick/pkg/manifest"
)

// mergeOptions holds the resolved flag values for a merge run.
type mergeOptions struct {
	manifestPath string
	repoDir      string
	gitBinary    string
	outputFile   string
	outputFormat string
	pretty       bool
	timeout      time.Duration
}

// getMergeOptions reads and validates the merge flags.
func getMergeOptions(cmd *cobra.Command) (*mergeOptions, error) {
	opts := &mergeOptions{}

	var err error
	if opts.manifestPath, err = cmd.Flags().GetString("manifest"); err != nil {
		return nil, internalFlagError("manifest", err)
	}
	if opts.repoDir, err = cmd.Flags().GetString("repo"); err != nil {
		return nil, internalFlagError("repo", err)
	}
	if opts.gitBinary, err = cmd.Flags().GetString("git-bin"); err != nil {
		return nil, internalFlagError("git-bin", err)
	}
	if opts.outputFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, internalFlagError("output", err)
	}
	if opts.outputFormat, err = cmd.Flags().GetString("output-format"); err != nil {
		return nil, internalFlagError("output-format", err)
	}
	if opts.pretty, err = cmd.Flags().GetBool("pretty"); err != nil {
		return nil, internalFlagError("pretty", err)
	}
	if opts.timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, internalFlagError("timeout", err)
	}

	if opts.outputFormat != "json" && opts.outputFormat != "yaml" {
		return nil, &exitcodes.ExitCodeError{
			Code: exitcodes.ExitInputConfigurationError,
			Err:  fmt.Errorf("invalid output format %q: must be json or yaml", opts.outputFormat),
		}
	}

	return opts, nil
}

func internalFlagError(name string, err error) error {
	return &exitcodes.ExitCodeError{
		Code: exitcodes.ExitInternalError,
		Err:  fmt.Errorf("failed to get %s flag: %w", name, err),
	}
}

// runMerge is the whole pipeline: fetch the target manifest, fetch the
// source manifest, cherry-pick the named charts, emit the result. Fetches
// run sequentially (target first) and any failure aborts before anything is
// written to the success channel.
func runMerge(cmd *cobra.Command, args []string) error {
	opts, err := getMergeOptions(cmd)
	if err != nil {
		return err
	}

	targetRev, sourceRev := args[0], args[1]
	// Split on "," exactly; no trimming, no escaping. A name with
	// surrounding whitespace is looked up with that whitespace.
	names := strings.Split(args[2], ",")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	client := gitClient
	if client == nil {
		client = git.NewRealClient(opts.gitBinary, opts.repoDir)
	}

	log.Info("merging manifests",
		"target", targetRev,
		"source", sourceRev,
		"charts", args[2],
		"manifest", opts.manifestPath)

	target, err := manifest.Fetch(ctx, client, targetRev, opts.manifestPath)
	if err != nil {
		return wrapFetchError(err)
	}

	source, err := manifest.Fetch(ctx, client, sourceRev, opts.manifestPath)
	if err != nil {
		return wrapFetchError(err)
	}

	merged, err := manifest.CherryPick(target, source, names)
	if err != nil {
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitChartNotFound,
			Err:  err,
		}
	}

	return emit(cmd, merged, opts)
}

// wrapFetchError maps a fetch failure to the retrieval or parsing exit code.
func wrapFetchError(err error) error {
	var retrievalErr *git.RetrievalError
	switch {
	case errors.As(err, &retrievalErr):
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitManifestRetrievalFailed,
			Err:  err,
		}
	case errors.Is(err, manifest.ErrParseManifest):
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitManifestParsingError,
			Err:  err,
		}
	default:
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitGeneralRuntimeError,
			Err:  err,
		}
	}
}

// emit serializes the merged manifest and writes it, newline-terminated, to
// stdout or to the --output file.
func emit(cmd *cobra.Command, merged manifest.Manifest, opts *mergeOptions) error {
	var (
		content []byte
		err     error
	)
	switch opts.outputFormat {
	case "yaml":
		content, err = manifest.EncodeYAML(merged)
	default:
		content, err = manifest.EncodeJSON(merged, opts.pretty)
	}
	if err != nil {
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitInternalError,
			Err:  err,
		}
	}

	if len(content) == 0 || content[len(content)-1] != '\n' {
		content = append(content, '\n')
	}

	if opts.outputFile != "" {
		if writeErr := fileutil.WriteFile(opts.outputFile, content, fileutil.ReadWriteUserReadOthers); writeErr != nil {
			return &exitcodes.ExitCodeError{
				Code: exitcodes.ExitIOError,
				Err:  fmt.Errorf("failed to write output file %s: %w", opts.outputFile, writeErr),
			}
		}
		log.Info("wrote merged manifest", "file", opts.outputFile)
		return nil
	}

	if _, writeErr := fmt.Fprint(cmd.OutOrStdout(), string(content)); writeErr != nil {
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitIOError,
			Err:  fmt.Errorf("failed to write merged manifest: %w", writeErr),
		}
	}
	return nil
}
