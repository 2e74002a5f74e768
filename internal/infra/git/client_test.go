package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/kodebase/kode/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupGitRepo creates a temporary git repository for testing.
func setupGitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# Test\n"), 0o644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// runGit executes a git command and fails the test if it errors.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
}

func TestNewClient_Success(t *testing.T) {
	dir := setupGitRepo(t)

	client, err := NewClient(dir)
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, dir, client.RepoRoot())
}

func TestNewClient_NotGitRepo(t *testing.T) {
	dir := t.TempDir() // Not a git repository

	client, err := NewClient(dir)
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
	assert.Nil(t, client)
}

func TestNewClient_FromSubdirectory(t *testing.T) {
	dir := setupGitRepo(t)
	sub := filepath.Join(dir, "deeply", "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	client, err := NewClient(sub)
	require.NoError(t, err)
	assert.Equal(t, dir, client.RepoRoot())
}

func TestCurrentBranch(t *testing.T) {
	dir := setupGitRepo(t)
	client, err := NewClient(dir)
	require.NoError(t, err)

	branch, err := client.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	runGit(t, dir, "checkout", "-b", "A.1.3")
	// Re-open: go-git caches HEAD resolution per call, not per client,
	// but a fresh client mirrors real invocations.
	client, err = NewClient(dir)
	require.NoError(t, err)
	branch, err = client.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "A.1.3", branch)
}

func TestBranchExists(t *testing.T) {
	dir := setupGitRepo(t)
	runGit(t, dir, "branch", "A.1.3")

	client, err := NewClient(dir)
	require.NoError(t, err)

	exists, err := client.BranchExists("A.1.3")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.BranchExists("B.9.9")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCheckout(t *testing.T) {
	dir := setupGitRepo(t)
	runGit(t, dir, "branch", "A.1.3")

	client, err := NewClient(dir)
	require.NoError(t, err)

	require.NoError(t, client.Checkout("A.1.3"))

	client, err = NewClient(dir)
	require.NoError(t, err)
	branch, err := client.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "A.1.3", branch)
}

func TestCommit(t *testing.T) {
	dir := setupGitRepo(t)
	client, err := NewClient(dir)
	require.NoError(t, err)

	file := filepath.Join(dir, "artifact.yml")
	require.NoError(t, os.WriteFile(file, []byte("events:\n"), 0o644))

	require.NoError(t, client.Commit([]string{file}, "A.1.3: chore: record event"))

	cmd := exec.Command("git", "log", "-1", "--pretty=%s")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "A.1.3: chore: record event")
}

func TestDeleteBranch(t *testing.T) {
	dir := setupGitRepo(t)
	runGit(t, dir, "branch", "A.1.3")

	client, err := NewClient(dir)
	require.NoError(t, err)

	require.NoError(t, client.DeleteBranch("A.1.3", false))

	exists, err := client.BranchExists("A.1.3")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteBranch_UnmergedNeedsForce(t *testing.T) {
	dir := setupGitRepo(t)
	runGit(t, dir, "checkout", "-b", "A.1.3")
	file := filepath.Join(dir, "work.txt")
	require.NoError(t, os.WriteFile(file, []byte("wip\n"), 0o644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "wip")
	runGit(t, dir, "checkout", "main")

	client, err := NewClient(dir)
	require.NoError(t, err)

	// Safe delete refuses unmerged work; force delete succeeds.
	assert.Error(t, client.DeleteBranch("A.1.3", false))
	assert.NoError(t, client.DeleteBranch("A.1.3", true))
}

func TestIdentity(t *testing.T) {
	dir := setupGitRepo(t)
	client, err := NewClient(dir)
	require.NoError(t, err)

	name, email, err := client.Identity()
	require.NoError(t, err)
	assert.Equal(t, "Test User", name)
	assert.Equal(t, "test@example.com", email)
}
