package main

import (
	"fmt"

	"github.com/spf13/cobra"

	log "github.com/chart-tools/chartpick/pkg/log"
	"github.com/chart-tools/chartpick/pkg/version"
)

// newVersionCmd builds the version subcommand. It reports the chartpick
// version and, when available, the version of the git binary that would be
// invoked.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chartpick version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "chartpick version %s\n", version.BinaryVersion)

			gitBinary, err := cmd.Root().Flags().GetString("git-bin")
			if err != nil {
				gitBinary = ""
			}
			gitVersion, err := version.GitVersion(gitBinary)
			if err != nil {
				log.Debug("git version unavailable", "error", err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "git version %s\n", gitVersion)
			return nil
		},
	}
}
