// Package main implements the command-line interface for the chartpick tool.
// chartpick cherry-picks named helmCharts entries of the build manifest
// (build.json) from one git revision into another and emits the merged
// manifest on stdout.
//
// Invocation:
//
//	chartpick <target-revision> <source-revision> <chart1,chart2,...>
//
// The target manifest is fetched at the target revision, the named chart
// entries are replaced with their counterparts from the source revision, and
// the merged document is printed. Nothing is printed on failure.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chart-tools/chartpick/internal/git"
	"github.com/chart-tools/chartpick/pkg/exitcodes"
	log "github.com/chart-tools/chartpick/pkg/log"
	"github.com/chart-tools/chartpick/pkg/manifest"
)

// gitClient is the version-control client used by the merge pipeline.
// It is a package variable so tests can substitute a mock.
var gitClient git.ClientInterface

// SetGitClient replaces the git client and returns a function to restore it.
// This is primarily used for testing.
func SetGitClient(client git.ClientInterface) func() {
	oldClient := gitClient
	gitClient = client
	return func() { gitClient = oldClient }
}

// rootCmd is the command Execute runs; tests build their own via newRootCmd.
var rootCmd = newRootCmd()

// newRootCmd builds the chartpick root command with all flags registered.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chartpick <target-revision> <source-revision> <chart1,chart2,...>",
		Short: "Cherry-pick helmCharts entries of build.json between git revisions",
		Long: `chartpick merges selective helmCharts entries between two git revisions.

It reads the build manifest (build.json) as committed at the target revision,
replaces the named chart entries with their counterparts from the source
revision, and prints the merged manifest to stdout. Every other key of the
target manifest passes through unchanged.

The merge is all-or-nothing: if a requested chart is missing from the source
manifest, or either manifest lacks the helmCharts mapping, nothing is printed
and the command exits non-zero.`,
		Example: `  # Take the api and worker chart definitions from release-1.2 into main's manifest
  chartpick main release-1.2 api,worker

  # Operate on a checkout elsewhere and write the result to a file
  chartpick --repo /srv/builds --output merged.json main release-1.2 api

  # Emit YAML instead of JSON
  chartpick --output-format yaml main release-1.2 api`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return &exitcodes.ExitCodeError{
					Code: exitcodes.ExitMissingRequiredArgs,
					Err:  fmt.Errorf("expected exactly 3 arguments (target-revision, source-revision, chart names), got %d", len(args)),
				}
			}
			return nil
		},
		PersistentPreRunE: setupRun,
		RunE:              runMerge,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cmd.PersistentFlags().String("config", "", "config file (default is $HOME/.chartpick.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-level", "info", "set log level (debug, info, warn, error)")

	cmd.Flags().String("manifest", manifest.DefaultPath, "path of the build manifest inside the repository")
	cmd.Flags().String("repo", "", "git repository directory (default is the current directory)")
	cmd.Flags().String("git-bin", "", "git binary to invoke (default \"git\")")
	cmd.Flags().String("output", "", "write the merged manifest to a file instead of stdout")
	cmd.Flags().String("output-format", "json", "output format (json or yaml)")
	cmd.Flags().Bool("pretty", false, "indent JSON output")
	cmd.Flags().Duration("timeout", 0, "bound each git invocation (0 means no timeout)")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupRun configures logging from flags and loads the optional config file
// before any command logic runs.
func setupRun(cmd *cobra.Command, _ []string) error {
	debugEnabled, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitInternalError,
			Err:  fmt.Errorf("failed to get debug flag: %w", err),
		}
	}
	logLevelStr, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitInternalError,
			Err:  fmt.Errorf("failed to get log-level flag: %w", err),
		}
	}

	level := log.LevelInfo
	if debugEnabled {
		level = log.LevelDebug
	} else if logLevelStr != "" {
		parsedLevel, parseErr := log.ParseLevel(logLevelStr)
		if parseErr != nil {
			log.Warn("invalid log level, using default", "level", logLevelStr, "default", level.String())
		} else {
			level = parsedLevel
		}
	}
	log.SetLevel(level)

	return initConfig(cmd)
}

// initConfig reads the viper config file and applies its values to flags the
// user did not set explicitly. A missing config file is not an error unless
// one was named with --config.
func initConfig(cmd *cobra.Command) error {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitInternalError,
			Err:  fmt.Errorf("failed to get config flag: %w", err),
		}
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".chartpick")
		v.SetConfigType("yaml")
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return &exitcodes.ExitCodeError{
			Code: exitcodes.ExitInputConfigurationError,
			Err:  fmt.Errorf("failed to read config file: %w", err),
		}
	}
	log.Debug("loaded config file", "file", v.ConfigFileUsed())

	// Config supplies defaults; explicit flags win.
	for _, name := range []string{"manifest", "repo", "git-bin", "output-format"} {
		if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
			continue
		}
		if value := v.GetString(name); value != "" {
			if setErr := cmd.Flags().Set(name, value); setErr != nil {
				return &exitcodes.ExitCodeError{
					Code: exitcodes.ExitInputConfigurationError,
					Err:  fmt.Errorf("failed to apply config value for %s: %w", name, setErr),
				}
			}
		}
	}

	return nil
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// executeCommand is a helper for testing Cobra commands
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err = root.Execute()
	return buf.String(), err
}
