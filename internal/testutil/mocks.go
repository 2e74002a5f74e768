// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kodebase/kode/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockGit is a stateful test double for domain.Git. Every operation is
// appended to Calls so tests can assert ordering and short-circuits.
type MockGit struct {
	Current         string          // Currently checked-out branch
	Branches        map[string]bool // Existing local branches
	Calls           []string        // Operation log, e.g. "checkout main"
	Name            string
	Email           string
	CheckoutErr     error
	PullErr         error
	CommitErr       error
	PushErr         error
	SafeDeleteErr   error // Returned by DeleteBranch(force=false)
	ForceDeleteErr  error
	RemoteDeleteErr error
	IdentityErr     error
}

// NewMockGit creates a MockGit positioned on the given branch.
func NewMockGit(current string, branches ...string) *MockGit {
	m := &MockGit{
		Current:  current,
		Branches: make(map[string]bool),
		Name:     "Test User",
		Email:    "test@example.com",
	}
	for _, b := range branches {
		m.Branches[b] = true
	}
	return m
}

func (m *MockGit) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

// Called reports whether an operation with the given prefix was recorded.
func (m *MockGit) Called(prefix string) bool {
	for _, c := range m.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// CurrentBranch returns the current branch.
func (m *MockGit) CurrentBranch() (string, error) {
	return m.Current, nil
}

// BranchExists checks the configured branch set.
func (m *MockGit) BranchExists(branch string) (bool, error) {
	return m.Branches[branch], nil
}

// Checkout switches the current branch.
func (m *MockGit) Checkout(branch string) error {
	m.record("checkout %s", branch)
	if m.CheckoutErr != nil {
		return m.CheckoutErr
	}
	m.Current = branch
	return nil
}

// Pull records the pull.
func (m *MockGit) Pull(remote, branch string) error {
	m.record("pull %s %s", remote, branch)
	return m.PullErr
}

// Commit records the commit.
func (m *MockGit) Commit(paths []string, message string) error {
	m.record("commit %s", strings.Join(paths, " "))
	return m.CommitErr
}

// Push records the push.
func (m *MockGit) Push(remote, branch string) error {
	m.record("push %s %s", remote, branch)
	return m.PushErr
}

// DeleteBranch removes the branch from the set unless configured to fail.
func (m *MockGit) DeleteBranch(branch string, force bool) error {
	if force {
		m.record("branch -D %s", branch)
		if m.ForceDeleteErr != nil {
			return m.ForceDeleteErr
		}
	} else {
		m.record("branch -d %s", branch)
		if m.SafeDeleteErr != nil {
			return m.SafeDeleteErr
		}
	}
	delete(m.Branches, branch)
	return nil
}

// DeleteRemoteBranch records the remote deletion.
func (m *MockGit) DeleteRemoteBranch(remote, branch string) error {
	m.record("push %s --delete %s", remote, branch)
	return m.RemoteDeleteErr
}

// Identity returns the configured operator identity.
func (m *MockGit) Identity() (string, string, error) {
	if m.IdentityErr != nil {
		return "", "", m.IdentityErr
	}
	return m.Name, m.Email, nil
}

// MockReview is a test double for domain.Review.
type MockReview struct {
	PR           *domain.PullRequest
	StatusErr    error
	MergeErr     error
	StatusCalled bool
	MergeCalled  bool
}

// PullRequestStatus returns the configured pull request.
func (m *MockReview) PullRequestStatus(_ context.Context) (*domain.PullRequest, error) {
	m.StatusCalled = true
	if m.StatusErr != nil {
		return nil, m.StatusErr
	}
	return m.PR, nil
}

// MergePullRequest records the merge.
func (m *MockReview) MergePullRequest(_ context.Context) error {
	m.MergeCalled = true
	return m.MergeErr
}

// MockArtifacts is a test double for domain.ArtifactRepository backed by
// an in-memory path → content map.
type MockArtifacts struct {
	Files    map[string]string
	Artifact *domain.Artifact // Returned by Load
	FindErr  error
	WriteErr error
}

// NewMockArtifacts creates a MockArtifacts with the given files.
func NewMockArtifacts(files map[string]string) *MockArtifacts {
	if files == nil {
		files = make(map[string]string)
	}
	return &MockArtifacts{Files: files}
}

// Find returns the single path whose base name starts with id.
func (m *MockArtifacts) Find(id string) (string, error) {
	if m.FindErr != nil {
		return "", m.FindErr
	}
	var matches []string
	for path := range m.Files {
		if strings.HasPrefix(pathBase(path), id) {
			matches = append(matches, path)
		}
	}
	switch len(matches) {
	case 0:
		return "", domain.ErrArtifactNotFound
	case 1:
		return matches[0], nil
	default:
		return "", domain.ErrAmbiguousArtifact
	}
}

// FindExact returns the path whose base name equals id.
func (m *MockArtifacts) FindExact(id string) (string, error) {
	if m.FindErr != nil {
		return "", m.FindErr
	}
	for path := range m.Files {
		if pathBase(path) == id {
			return path, nil
		}
	}
	return "", domain.ErrArtifactNotFound
}

// Read returns the file content.
func (m *MockArtifacts) Read(path string) (string, error) {
	content, ok := m.Files[path]
	if !ok {
		return "", domain.ErrArtifactNotFound
	}
	return content, nil
}

// Write replaces the file content.
func (m *MockArtifacts) Write(path, content string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[path] = content
	return nil
}

// Load returns the configured artifact.
func (m *MockArtifacts) Load(path string) (*domain.Artifact, error) {
	if m.Artifact == nil {
		return nil, domain.ErrArtifactNotFound
	}
	return m.Artifact, nil
}

// pathBase returns the file name without directory or extension.
func pathBase(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		// Strip only the extension, identifiers themselves contain dots.
		if ext := base[i:]; ext == ".yml" || ext == ".yaml" {
			base = base[:i]
		}
	}
	return base
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []string
}

func (m *MockLogger) log(level, issueID, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s %s %s %s", level, issueID, category, msg))
}

// Debug records a debug entry.
func (m *MockLogger) Debug(issueID, category, msg string) { m.log("DEBUG", issueID, category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(issueID, category, msg string) { m.log("INFO", issueID, category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(issueID, category, msg string) { m.log("WARN", issueID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(issueID, category, msg string) { m.log("ERROR", issueID, category, msg) }

// MockBridge is a test double for domain.ContextBridge.
type MockBridge struct {
	Rendered string
	Err      error
	Unit     string
	ID       string
	Opts     domain.ContextOptions
}

// InitiativeContext returns the configured rendering.
func (m *MockBridge) InitiativeContext(_ context.Context, id string, opts domain.ContextOptions) (string, error) {
	m.Unit, m.ID, m.Opts = "initiative", id, opts
	return m.Rendered, m.Err
}

// MilestoneContext returns the configured rendering.
func (m *MockBridge) MilestoneContext(_ context.Context, id string, opts domain.ContextOptions) (string, error) {
	m.Unit, m.ID, m.Opts = "milestone", id, opts
	return m.Rendered, m.Err
}
