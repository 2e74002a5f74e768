// Package cli provides the command-line interface for kode.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kodebase/kode/internal/app"
)

// NewRootCommand creates the root command for kode.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "kode",
		Short: "Issue workflow CLI for kodebase repositories",
		Long: `kode drives the lifecycle of kodebase issue artifacts.

Artifacts live under .kodebase/artifacts/ and are plain YAML files
tracked in git. kode finishes an issue end to end: it merges the
open pull request, records a completed event in the artifact without
reformatting the file, commits the change to the integration branch,
and cleans up the issue branch.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(
		newCompleteCommand(c),
		newShowCommand(c),
		newContextCommand(c),
	)

	return root
}
