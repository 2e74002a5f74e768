// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"path/filepath"

	"github.com/kodebase/kode/internal/domain"
	"github.com/kodebase/kode/internal/infra/artifact"
	"github.com/kodebase/kode/internal/infra/bridge"
	"github.com/kodebase/kode/internal/infra/config"
	"github.com/kodebase/kode/internal/infra/executor"
	"github.com/kodebase/kode/internal/infra/git"
	"github.com/kodebase/kode/internal/infra/logging"
	"github.com/kodebase/kode/internal/infra/review"
	"github.com/kodebase/kode/internal/usecase"
)

// Paths holds the resolved filesystem layout of the repository.
type Paths struct {
	RepoRoot      string // Root directory of the git repository
	KodebaseDir   string // Path to .kodebase
	ArtifactsRoot string // Path to the artifact tree
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Git       domain.Git
	Review    domain.Review
	Artifacts domain.ArtifactRepository
	Bridge    domain.ContextBridge
	Logger    domain.Logger
	Clock     domain.Clock

	// Configuration
	Config *domain.Config
	Paths  Paths
}

// New creates a new Container by detecting the git repository from the given directory.
func New(dir string) (*Container, error) {
	gitClient, err := git.NewClient(dir)
	if err != nil {
		return nil, err
	}

	repoRoot := gitClient.RepoRoot()
	kodebaseDir := domain.KodebaseDir(repoRoot)

	cfg, err := config.NewLoader(kodebaseDir).Load()
	if err != nil {
		return nil, err
	}

	artifactsRoot := filepath.Join(repoRoot, filepath.FromSlash(cfg.Artifacts.Root))

	exec := executor.NewClient()

	return &Container{
		Git:       gitClient,
		Review:    review.NewClient(exec, repoRoot),
		Artifacts: artifact.New(artifactsRoot),
		Bridge:    bridge.NewClient(exec, cfg.Bridge.Command, repoRoot),
		Logger:    logging.New(kodebaseDir, logging.ParseLevel(cfg.Log.Level)),
		Clock:     domain.RealClock{},
		Config:    cfg,
		Paths: Paths{
			RepoRoot:      repoRoot,
			KodebaseDir:   kodebaseDir,
			ArtifactsRoot: artifactsRoot,
		},
	}, nil
}

// CompleteIssueUseCase creates a CompleteIssue use case writing progress to stderr.
func (c *Container) CompleteIssueUseCase(stderr io.Writer) *usecase.CompleteIssue {
	return usecase.NewCompleteIssue(
		c.Git,
		c.Review,
		c.Artifacts,
		c.Clock,
		c.Logger,
		stderr,
		c.Config.Workflow.MainBranch,
		c.Config.Workflow.Remote,
	)
}

// ShowIssueUseCase creates a ShowIssue use case.
func (c *Container) ShowIssueUseCase() *usecase.ShowIssue {
	return usecase.NewShowIssue(c.Artifacts)
}

// InitiativeContextUseCase creates an InitiativeContext use case.
func (c *Container) InitiativeContextUseCase() *usecase.InitiativeContext {
	return usecase.NewInitiativeContext(c.Artifacts, c.Bridge)
}

// MilestoneContextUseCase creates a MilestoneContext use case.
func (c *Container) MilestoneContextUseCase() *usecase.MilestoneContext {
	return usecase.NewMilestoneContext(c.Artifacts, c.Bridge)
}
