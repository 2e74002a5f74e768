// Package git provides the local version-control gateway.
package git

import (
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/kodebase/kode/internal/domain"
)

// Client implements domain.Git. Read-only inspection goes through go-git
// plumbing; operations that touch the index, the working tree or the
// network shell out to the git binary so its behavior (hooks, credential
// helpers, refspecs) is exactly what the operator gets on the command line.
type Client struct {
	repo     *gogit.Repository
	repoRoot string
}

// NewClient creates a new git client by detecting the repository root
// from the given directory.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, domain.ErrNotGitRepository
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolve worktree: %w", err)
	}

	return &Client{repo: repo, repoRoot: wt.Filesystem.Root()}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// CurrentBranch returns the name of the currently checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached at %s", head.Hash().String()[:8])
	}
	return head.Name().Short(), nil
}

// BranchExists checks if a local branch exists.
func (c *Client) BranchExists(branch string) (bool, error) {
	_, err := c.repo.Reference(plumbing.NewBranchReferenceName(branch), false)
	if err == nil {
		return true, nil
	}
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	return false, fmt.Errorf("check branch %s: %w", branch, err)
}

// Checkout switches to the given branch.
func (c *Client) Checkout(branch string) error {
	return c.run("checkout", branch)
}

// Pull fetches and integrates the branch from the remote.
func (c *Client) Pull(remote, branch string) error {
	return c.run("pull", remote, branch)
}

// Commit stages the given paths and records a commit.
func (c *Client) Commit(paths []string, message string) error {
	args := append([]string{"add", "--"}, paths...)
	if err := c.run(args...); err != nil {
		return err
	}
	return c.run("commit", "-m", message)
}

// Push pushes the branch to the remote.
func (c *Client) Push(remote, branch string) error {
	return c.run("push", remote, branch)
}

// DeleteBranch deletes a local branch.
// If force is true, it uses -D (force delete), otherwise -d.
func (c *Client) DeleteBranch(branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	return c.run("branch", flag, branch)
}

// DeleteRemoteBranch deletes a branch on the remote.
func (c *Client) DeleteRemoteBranch(remote, branch string) error {
	return c.run("push", remote, "--delete", branch)
}

// Identity returns the configured operator name and email.
func (c *Client) Identity() (string, string, error) {
	name, err := c.output("config", "user.name")
	if err != nil {
		return "", "", fmt.Errorf("read user.name: %w", err)
	}
	email, err := c.output("config", "user.email")
	if err != nil {
		return "", "", fmt.Errorf("read user.email: %w", err)
	}
	return name, email, nil
}

// run executes a git command in the repository root, surfacing the
// tool's combined output on failure.
func (c *Client) run(args ...string) error {
	//nolint:gosec // arguments are fixed subcommands and ref names, not shell text
	cmd := exec.Command("git", args...)
	cmd.Dir = c.repoRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (c *Client) output(args ...string) (string, error) {
	//nolint:gosec // arguments are fixed subcommands, not shell text
	cmd := exec.Command("git", args...)
	cmd.Dir = c.repoRoot
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Ensure Client implements domain.Git interface.
var _ domain.Git = (*Client)(nil)
