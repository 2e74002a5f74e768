package domain

import (
	"context"
	"path/filepath"
	"time"
)

// Git provides local version-control operations.
type Git interface {
	// CurrentBranch returns the name of the currently checked-out branch.
	CurrentBranch() (string, error)

	// BranchExists checks if a local branch exists.
	BranchExists(branch string) (bool, error)

	// Checkout switches to the given branch.
	Checkout(branch string) error

	// Pull fetches and integrates the branch from the remote.
	Pull(remote, branch string) error

	// Commit stages the given paths and records a commit.
	Commit(paths []string, message string) error

	// Push pushes the branch to the remote.
	Push(remote, branch string) error

	// DeleteBranch deletes a local branch. If force is true it uses -D.
	DeleteBranch(branch string, force bool) error

	// DeleteRemoteBranch deletes a branch on the remote.
	DeleteRemoteBranch(remote, branch string) error

	// Identity returns the configured operator name and email.
	Identity() (name, email string, err error)
}

// Pull request states and mergeability values as reported by the host.
const (
	PRStateOpen   = "OPEN"
	PRStateMerged = "MERGED"
	PRStateClosed = "CLOSED"

	PRMergeable   = "MERGEABLE"
	PRConflicting = "CONFLICTING"
)

// PullRequest describes the review state of a branch's pull request.
type PullRequest struct {
	State     string // OPEN, MERGED or CLOSED
	Mergeable string // MERGEABLE, CONFLICTING or UNKNOWN
	URL       string
}

// Review provides pull-request operations on the hosting provider.
type Review interface {
	// PullRequestStatus returns the pull request associated with the
	// current branch, or nil if none exists.
	PullRequestStatus(ctx context.Context) (*PullRequest, error)

	// MergePullRequest squash-merges the current branch's pull request
	// and deletes the remote branch.
	MergePullRequest(ctx context.Context) error
}

// ArtifactRepository locates and accesses issue artifacts on disk.
type ArtifactRepository interface {
	// Find resolves an identifier to exactly one artifact path by
	// filename prefix. Zero matches yields ErrArtifactNotFound, more
	// than one yields ErrAmbiguousArtifact.
	Find(id string) (string, error)

	// FindExact resolves an identifier to the artifact named <id>.yml.
	FindExact(id string) (string, error)

	// Read returns the raw text of an artifact file.
	Read(path string) (string, error)

	// Write replaces the raw text of an artifact file.
	Write(path, content string) error

	// Load decodes an artifact's metadata and event log for display.
	Load(path string) (*Artifact, error)
}

// ContextOptions configures context aggregation requests.
type ContextOptions struct {
	IncludeDevelopmentProcess bool
	IncludeCompletionAnalysis bool
}

// ContextBridge renders aggregated, human-readable context for
// higher-level work units. The rendering lives in an external tool;
// kode only consumes its request/response contract.
type ContextBridge interface {
	// InitiativeContext renders context for an initiative.
	InitiativeContext(ctx context.Context, id string, opts ContextOptions) (string, error)

	// MilestoneContext renders context for a milestone.
	MilestoneContext(ctx context.Context, id string, opts ContextOptions) (string, error)
}

// Logger records workflow progress to the log file.
type Logger interface {
	Debug(issueID, category, msg string)
	Info(issueID, category, msg string)
	Warn(issueID, category, msg string)
	Error(issueID, category, msg string)
}

// Config represents the application configuration.
type Config struct {
	Workflow  WorkflowConfig  // [workflow] settings
	Artifacts ArtifactsConfig // [artifacts] settings
	Bridge    BridgeConfig    // [bridge] settings
	Log       LogConfig       // [log] settings
}

// WorkflowConfig holds branch settings from the [workflow] section.
type WorkflowConfig struct {
	MainBranch string // Integration branch (default: main)
	Remote     string // Remote name (default: origin)
}

// ArtifactsConfig holds artifact settings from the [artifacts] section.
type ArtifactsConfig struct {
	Root string // Artifacts root, relative to the repository root
}

// BridgeConfig holds settings for the external context renderer.
type BridgeConfig struct {
	Command string // Executable invoked for context aggregation
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no file is present.
func NewDefaultConfig() *Config {
	return &Config{
		Workflow:  WorkflowConfig{MainBranch: "main", Remote: "origin"},
		Artifacts: ArtifactsConfig{Root: filepath.Join(".kodebase", "artifacts")},
		Bridge:    BridgeConfig{Command: "kodebase-context"},
		Log:       LogConfig{Level: "info"},
	}
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the repository configuration merged over defaults.
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
