package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kodebase/kode/internal/app"
	"github.com/kodebase/kode/internal/domain"
	"github.com/kodebase/kode/internal/usecase"
)

// newContextCommand creates the context command group.
func newContextCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Render aggregated context for a work unit",
		Long: `Render aggregated, human-readable context for an initiative or
milestone. The aggregation runs in the external kodebase-context tool;
kode validates the identifier, checks that the artifact exists, and
prints the rendered document.`,
	}

	cmd.AddCommand(
		newInitiativeContextCommand(c),
		newMilestoneContextCommand(c),
	)

	return cmd
}

// contextFlags binds the shared flags onto a context subcommand.
func contextFlags(cmd *cobra.Command, opts *domain.ContextOptions, output *string) {
	cmd.Flags().BoolVar(&opts.IncludeDevelopmentProcess, "include-dev-process", false,
		"Include the development process section")
	cmd.Flags().BoolVar(&opts.IncludeCompletionAnalysis, "include-completion-analysis", false,
		"Include the completion analysis section")
	cmd.Flags().StringVarP(output, "output", "o", "", "Write the rendered context to a file instead of stdout")
}

// writeContext delivers the rendered document to stdout or the --output file.
func writeContext(cmd *cobra.Command, output, content string) error {
	if output == "" {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write context: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Context written to: "+output))
	return nil
}

func newInitiativeContextCommand(c *app.Container) *cobra.Command {
	var opts domain.ContextOptions
	var output string

	cmd := &cobra.Command{
		Use:   "initiative <id>",
		Short: "Render context for an initiative",
		Long: `Render aggregated context for an initiative.

Examples:
  kode context initiative A
  kode context initiative A --include-dev-process
  kode context initiative A -o initiative-A.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.InitiativeContextUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitiativeContextInput{
				InitiativeID: args[0],
				Options:      opts,
			})
			if err != nil {
				return err
			}
			return writeContext(cmd, output, out.Content)
		},
	}

	contextFlags(cmd, &opts, &output)
	return cmd
}

func newMilestoneContextCommand(c *app.Container) *cobra.Command {
	var opts domain.ContextOptions
	var output string

	cmd := &cobra.Command{
		Use:   "milestone <id>",
		Short: "Render context for a milestone",
		Long: `Render aggregated context for a milestone.

Examples:
  kode context milestone A.1
  kode context milestone A.1 --include-completion-analysis
  kode context milestone A.1 -o milestone-A.1.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.MilestoneContextUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.MilestoneContextInput{
				MilestoneID: args[0],
				Options:     opts,
			})
			if err != nil {
				return err
			}
			return writeContext(cmd, output, out.Content)
		},
	}

	contextFlags(cmd, &opts, &output)
	return cmd
}
