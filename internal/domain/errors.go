package domain

import "errors"

// Domain errors.
var (
	ErrNotGitRepository        = errors.New("not a git repository (or any of the parent directories)")
	ErrArtifactNotFound        = errors.New("artifact not found")
	ErrAmbiguousArtifact       = errors.New("ambiguous artifact match")
	ErrEventsSectionMissing    = errors.New("events section missing from artifact")
	ErrPullRequestNotMergeable = errors.New("pull request is not mergeable")
	ErrInvalidIssueID          = errors.New("invalid issue ID")
	ErrInvalidMilestoneID      = errors.New("invalid milestone ID")
	ErrInvalidInitiativeID     = errors.New("invalid initiative ID")
)
