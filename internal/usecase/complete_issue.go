package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/kodebase/kode/internal/domain"
)

// CompleteIssueInput contains the parameters for completing an issue.
type CompleteIssueInput struct {
	IssueID string // Issue identifier, doubles as the branch name
}

// CompleteIssueOutput contains the result of completing an issue.
type CompleteIssueOutput struct {
	ArtifactPath   string // Path of the mutated artifact
	PullRequestURL string // URL of the merged PR, if one was found
	Merged         bool   // PR was merged during this run
	EventRecorded  bool   // Completed event inserted (false = already present)
	BranchDeleted  bool   // Local issue branch was removed
}

// CompleteIssue is the use case driving the issue completion workflow:
// merge the pull request, sync main, record the completed event, push,
// and clean up branches. Every step re-derives its precondition from
// observable state (current branch, PR state, artifact contents), so a
// crashed or aborted run is resumed safely by running it again.
type CompleteIssue struct {
	git        domain.Git
	review     domain.Review
	artifacts  domain.ArtifactRepository
	clock      domain.Clock
	logger     domain.Logger
	stderr     io.Writer
	mainBranch string
	remote     string
}

// NewCompleteIssue creates a new CompleteIssue use case.
func NewCompleteIssue(
	git domain.Git,
	review domain.Review,
	artifacts domain.ArtifactRepository,
	clock domain.Clock,
	logger domain.Logger,
	stderr io.Writer,
	mainBranch string,
	remote string,
) *CompleteIssue {
	return &CompleteIssue{
		git:        git,
		review:     review,
		artifacts:  artifacts,
		clock:      clock,
		logger:     logger,
		stderr:     stderr,
		mainBranch: mainBranch,
		remote:     remote,
	}
}

// Execute runs the completion workflow for an issue.
// Processing:
//   - Capture the current branch
//   - If on the issue branch, query and possibly merge the pull request
//   - Switch to main and pull
//   - Locate the artifact and append the completed event (idempotent)
//   - Commit and push the artifact when the event was inserted
//   - Delete the issue branch locally, best-effort on the remote
//   - Leave the checkout on main
func (uc *CompleteIssue) Execute(ctx context.Context, in CompleteIssueInput) (*CompleteIssueOutput, error) {
	if err := domain.ValidateIssueID(in.IssueID); err != nil {
		return nil, err
	}

	out := &CompleteIssueOutput{}

	startBranch, err := uc.git.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("get current branch: %w", err)
	}
	branch := startBranch
	uc.status("Current branch: %s", branch)

	// Check for an open PR. Only meaningful when the checkout is on the
	// issue branch; a failed query counts as "no PR", not as an error.
	if branch == in.IssueID {
		pr, prErr := uc.review.PullRequestStatus(ctx)
		if prErr != nil {
			uc.status("No PR found or unable to check PR status")
			uc.logger.Warn(in.IssueID, "pr", fmt.Sprintf("status query failed: %v", prErr))
			pr = nil
		}
		if pr != nil {
			out.PullRequestURL = pr.URL
			switch {
			case pr.State == domain.PRStateOpen && pr.Mergeable == domain.PRMergeable:
				uc.status("Found open PR: %s", pr.URL)
				uc.status("Merging PR...")
				if mergeErr := uc.review.MergePullRequest(ctx); mergeErr != nil {
					return nil, fmt.Errorf("merge pull request: %w", mergeErr)
				}
				// The merge checks out main and drops the branch both
				// locally and on the remote.
				branch = uc.mainBranch
				out.Merged = true
				uc.logger.Info(in.IssueID, "merge", "PR merged (squash)")
			case pr.State == domain.PRStateMerged:
				uc.status("PR already merged")
			default:
				return nil, fmt.Errorf("PR is %s/%s, resolve conflicts or approvals before completing: %w",
					pr.State, pr.Mergeable, domain.ErrPullRequestNotMergeable)
			}
		}
	}

	// Sync main before touching the artifact. Mutating on an unsynced
	// tree risks a push rejection after the event is committed.
	if err := uc.syncMain(); err != nil {
		return nil, err
	}

	path, err := uc.artifacts.Find(in.IssueID)
	if err != nil {
		return nil, err
	}
	out.ArtifactPath = path
	uc.status("Found issue file: %s", path)

	inserted, err := uc.appendCompletedEvent(in.IssueID, path)
	if err != nil {
		return nil, err
	}
	out.EventRecorded = inserted

	if inserted {
		uc.status("Committing completed event...")
		if err := uc.git.Commit([]string{path}, domain.CompletionCommitMessage(in.IssueID)); err != nil {
			return nil, fmt.Errorf("commit artifact: %w", err)
		}
		uc.status("Pushing to remote...")
		if err := uc.git.Push(uc.remote, uc.mainBranch); err != nil {
			return nil, fmt.Errorf("push %s: %w", uc.mainBranch, err)
		}
		uc.logger.Info(in.IssueID, "event", "completed event committed and pushed")
	} else {
		uc.status("Completed event already exists")
		uc.logger.Info(in.IssueID, "event", "completed event already present, skipping commit")
	}

	// Clean up the issue branch. Skipped when the merge step already did
	// it (branch was reset to main above).
	if branch != uc.mainBranch && branch == in.IssueID {
		deleted, cleanupErr := uc.cleanupBranch(in.IssueID, branch)
		if cleanupErr != nil {
			return nil, cleanupErr
		}
		out.BranchDeleted = deleted
	}

	// Leave the operator on main, ready for the next task.
	final, err := uc.git.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("get current branch: %w", err)
	}
	if final != uc.mainBranch {
		if err := uc.git.Checkout(uc.mainBranch); err != nil {
			return nil, fmt.Errorf("checkout %s: %w", uc.mainBranch, err)
		}
	}

	return out, nil
}

// syncMain switches to the main branch if needed and pulls the latest.
func (uc *CompleteIssue) syncMain() error {
	current, err := uc.git.CurrentBranch()
	if err != nil {
		return fmt.Errorf("get current branch: %w", err)
	}
	if current != uc.mainBranch {
		uc.status("Switching to %s branch...", uc.mainBranch)
		if err := uc.git.Checkout(uc.mainBranch); err != nil {
			return fmt.Errorf("checkout %s: %w", uc.mainBranch, err)
		}
	}
	uc.status("Syncing %s branch...", uc.mainBranch)
	if err := uc.git.Pull(uc.remote, uc.mainBranch); err != nil {
		return fmt.Errorf("pull %s: %w", uc.mainBranch, err)
	}
	return nil
}

// appendCompletedEvent records the completed event in the artifact.
// Returns false when the event was already present.
func (uc *CompleteIssue) appendCompletedEvent(issueID, path string) (bool, error) {
	name, email, err := uc.git.Identity()
	if err != nil {
		return false, fmt.Errorf("get operator identity: %w", err)
	}

	doc, err := uc.artifacts.Read(path)
	if err != nil {
		return false, err
	}

	uc.status("Adding completed event...")
	newDoc, inserted, err := domain.AppendEvent(doc, domain.Event{
		Kind:      domain.EventCompleted,
		Timestamp: uc.clock.Now(),
		Actor:     domain.FormatActor(name, email),
		Trigger:   domain.TriggerPRMerged,
	})
	if err != nil {
		return false, err
	}
	if !inserted {
		return false, nil
	}

	if err := uc.artifacts.Write(path, newDoc); err != nil {
		return false, err
	}
	return true, nil
}

// cleanupBranch removes the local issue branch, falling back to a force
// delete, then best-effort deletes the remote branch (the merge step may
// already have removed it).
func (uc *CompleteIssue) cleanupBranch(issueID, branch string) (bool, error) {
	uc.status("Cleaning up branch: %s", branch)

	exists, err := uc.git.BranchExists(branch)
	if err != nil {
		return false, fmt.Errorf("check branch %s: %w", branch, err)
	}

	deleted := false
	if exists {
		if err := uc.git.DeleteBranch(branch, false); err != nil {
			uc.status("Force deleting branch %s...", branch)
			uc.logger.Warn(issueID, "cleanup", fmt.Sprintf("safe delete failed: %v", err))
			if err := uc.git.DeleteBranch(branch, true); err != nil {
				return false, fmt.Errorf("force delete branch %s: %w", branch, err)
			}
		}
		deleted = true
		uc.logger.Info(issueID, "cleanup", "local branch deleted")
	} else {
		uc.status("Local branch %s already deleted", branch)
	}

	if err := uc.git.DeleteRemoteBranch(uc.remote, branch); err != nil {
		// Expected when the merge already deleted the remote branch.
		uc.logger.Debug(issueID, "cleanup", fmt.Sprintf("remote delete skipped: %v", err))
	}

	return deleted, nil
}

// status writes an operator-facing progress line.
func (uc *CompleteIssue) status(format string, args ...any) {
	if uc.stderr == nil {
		return
	}
	_, _ = fmt.Fprintf(uc.stderr, format+"\n", args...)
}
