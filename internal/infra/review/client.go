// Package review provides the pull-request host gateway via the gh CLI.
package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kodebase/kode/internal/domain"
)

// Client implements domain.Review by shelling out to gh. The host is a
// black box: the contract is the JSON shape of `gh pr view` and the exit
// status of `gh pr merge`.
type Client struct {
	executor domain.CommandExecutor
	repoRoot string
}

// NewClient creates a new review client rooted at the repository.
func NewClient(executor domain.CommandExecutor, repoRoot string) *Client {
	return &Client{executor: executor, repoRoot: repoRoot}
}

// prView mirrors the fields requested from `gh pr view --json`.
type prView struct {
	State     string `json:"state"`
	Mergeable string `json:"mergeable"`
	URL       string `json:"url"`
}

// PullRequestStatus returns the pull request associated with the current
// branch, or nil if none exists.
func (c *Client) PullRequestStatus(ctx context.Context) (*domain.PullRequest, error) {
	out, err := c.executor.Execute(ctx, &domain.ExecCommand{
		Program: "gh",
		Args:    []string{"pr", "view", "--json", "state,mergeable,url"},
		Dir:     c.repoRoot,
	})
	if err != nil {
		// gh exits non-zero when no PR exists for the branch; the
		// caller decides whether that is fatal.
		return nil, fmt.Errorf("gh pr view: %w", err)
	}

	var view prView
	if err := json.Unmarshal(out, &view); err != nil {
		return nil, fmt.Errorf("decode gh pr view output: %w", err)
	}

	return &domain.PullRequest{
		State:     view.State,
		Mergeable: view.Mergeable,
		URL:       view.URL,
	}, nil
}

// MergePullRequest squash-merges the current branch's pull request and
// deletes the remote branch.
func (c *Client) MergePullRequest(ctx context.Context) error {
	if _, err := c.executor.Execute(ctx, &domain.ExecCommand{
		Program: "gh",
		Args:    []string{"pr", "merge", "--squash", "--delete-branch"},
		Dir:     c.repoRoot,
	}); err != nil {
		return fmt.Errorf("gh pr merge: %w", err)
	}
	return nil
}

// Ensure Client implements domain.Review interface.
var _ domain.Review = (*Client)(nil)
