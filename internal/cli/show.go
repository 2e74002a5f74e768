package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kodebase/kode/internal/app"
	"github.com/kodebase/kode/internal/usecase"
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		JSON bool
		Raw  bool
	}

	cmd := &cobra.Command{
		Use:   "show <issue-id>",
		Short: "Display an issue artifact",
		Long: `Display the metadata and event log of an issue artifact.

Examples:
  # Show issue A.1.3
  kode show A.1.3

  # Output the decoded artifact as JSON
  kode show A.1.3 --json

  # Output the artifact file verbatim
  kode show A.1.3 --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowIssueUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowIssueInput{
				IssueID: args[0],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Raw {
				_, _ = io.WriteString(w, out.Raw)
				return nil
			}
			if opts.JSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out.Artifact)
			}

			printArtifact(w, out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Output the artifact file verbatim")

	return cmd
}

// printArtifact renders the artifact details in human-readable form.
func printArtifact(w io.Writer, out *usecase.ShowIssueOutput) {
	art := out.Artifact

	_, _ = fmt.Fprintf(w, "# %s: %s\n\n", art.ID, art.Title)
	_, _ = fmt.Fprintf(w, "Status: %s\n", statusStyle(art.Status).Render(art.Status))
	_, _ = fmt.Fprintf(w, "File: %s\n", out.Path)

	if len(art.Events) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w, "\nEvents:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, ev := range art.Events {
		ts := ""
		if !ev.Timestamp.IsZero() {
			ts = ev.Timestamp.UTC().Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", ts, ev.Kind, ev.Actor, ev.Trigger)
	}
	_ = tw.Flush()
}
