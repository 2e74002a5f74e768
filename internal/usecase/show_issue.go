package usecase

import (
	"context"
	"fmt"

	"github.com/kodebase/kode/internal/domain"
)

// ShowIssueInput contains the parameters for showing an issue.
type ShowIssueInput struct {
	IssueID string // Issue ID (required)
}

// ShowIssueOutput contains the result of showing an issue.
type ShowIssueOutput struct {
	Path     string           // Artifact file path relative to the artifact root
	Artifact *domain.Artifact // Decoded artifact
	Raw      string           // Raw artifact document
}

// ShowIssue is the use case for displaying issue artifact details.
type ShowIssue struct {
	artifacts domain.ArtifactRepository
}

// NewShowIssue creates a new ShowIssue use case.
func NewShowIssue(artifacts domain.ArtifactRepository) *ShowIssue {
	return &ShowIssue{
		artifacts: artifacts,
	}
}

// Execute locates the issue artifact and returns its decoded form.
func (uc *ShowIssue) Execute(_ context.Context, in ShowIssueInput) (*ShowIssueOutput, error) {
	if err := domain.ValidateIssueID(in.IssueID); err != nil {
		return nil, err
	}

	path, err := uc.artifacts.Find(in.IssueID)
	if err != nil {
		return nil, fmt.Errorf("find artifact for %s: %w", in.IssueID, err)
	}

	raw, err := uc.artifacts.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	art, err := uc.artifacts.Load(path)
	if err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", path, err)
	}

	return &ShowIssueOutput{
		Path:     path,
		Artifact: art,
		Raw:      raw,
	}, nil
}
