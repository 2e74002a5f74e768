// Package bridge adapts the external context-aggregation renderer.
// The renderer itself is a separate tool; this package only speaks its
// request/response contract: a work-unit identifier plus option flags in,
// rendered text out.
package bridge

import (
	"context"
	"fmt"

	"github.com/kodebase/kode/internal/domain"
)

// Client implements domain.ContextBridge by invoking the configured
// renderer executable.
type Client struct {
	executor domain.CommandExecutor
	command  string
	repoRoot string
}

// NewClient creates a new bridge client.
func NewClient(executor domain.CommandExecutor, command, repoRoot string) *Client {
	return &Client{executor: executor, command: command, repoRoot: repoRoot}
}

// InitiativeContext renders context for an initiative.
func (c *Client) InitiativeContext(ctx context.Context, id string, opts domain.ContextOptions) (string, error) {
	return c.render(ctx, "initiative", id, opts)
}

// MilestoneContext renders context for a milestone.
func (c *Client) MilestoneContext(ctx context.Context, id string, opts domain.ContextOptions) (string, error) {
	return c.render(ctx, "milestone", id, opts)
}

func (c *Client) render(ctx context.Context, unit, id string, opts domain.ContextOptions) (string, error) {
	args := []string{unit, id}
	if opts.IncludeDevelopmentProcess {
		args = append(args, "--include-dev-process")
	}
	if opts.IncludeCompletionAnalysis {
		args = append(args, "--include-completion-analysis")
	}

	out, err := c.executor.Execute(ctx, &domain.ExecCommand{
		Program: c.command,
		Args:    args,
		Dir:     c.repoRoot,
	})
	if err != nil {
		return "", fmt.Errorf("aggregate %s context: %w", unit, err)
	}
	return string(out), nil
}

// Ensure Client implements domain.ContextBridge interface.
var _ domain.ContextBridge = (*Client)(nil)
