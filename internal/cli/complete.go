package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kodebase/kode/internal/app"
	"github.com/kodebase/kode/internal/usecase"
)

// newCompleteCommand creates the complete command.
func newCompleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <issue-id>",
		Short: "Finish an issue after its pull request merges",
		Long: `Finish an issue end to end.

If the pull request for the issue branch is still open and mergeable,
it is squash-merged first. The issue artifact then gets a completed
event appended to its events list, the change is committed and pushed
on the integration branch, and the issue branch is deleted locally
and on the remote.

The command is safe to re-run: an already merged PR, an already
recorded event, and an already deleted branch are each skipped.

Examples:
  # Complete issue A.1.3 (typically run from branch A.1.3)
  kode complete A.1.3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CompleteIssueUseCase(cmd.ErrOrStderr())
			out, err := uc.Execute(cmd.Context(), usecase.CompleteIssueInput{
				IssueID: args[0],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.EventRecorded {
				_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Issue %s completed", args[0])))
			} else {
				_, _ = fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Issue %s was already completed", args[0])))
			}
			if out.PullRequestURL != "" {
				_, _ = fmt.Fprintf(w, "PR: %s\n", out.PullRequestURL)
			}
			_, _ = fmt.Fprintf(w, "Artifact: %s\n", out.ArtifactPath)
			return nil
		},
	}

	return cmd
}
