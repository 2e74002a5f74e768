package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/kodebase/kode/internal/domain"
)

// MilestoneContextInput contains the parameters for rendering
// milestone context.
type MilestoneContextInput struct {
	MilestoneID string                // Milestone ID (required)
	Options     domain.ContextOptions // Optional sections to include
}

// MilestoneContextOutput contains the rendered context.
type MilestoneContextOutput struct {
	Content string // Rendered context document
}

// MilestoneContext is the use case for aggregating milestone context
// through the external bridge.
type MilestoneContext struct {
	artifacts domain.ArtifactRepository
	bridge    domain.ContextBridge
}

// NewMilestoneContext creates a new MilestoneContext use case.
func NewMilestoneContext(artifacts domain.ArtifactRepository, bridge domain.ContextBridge) *MilestoneContext {
	return &MilestoneContext{
		artifacts: artifacts,
		bridge:    bridge,
	}
}

// Execute validates the milestone and returns its rendered context.
func (uc *MilestoneContext) Execute(ctx context.Context, in MilestoneContextInput) (*MilestoneContextOutput, error) {
	if err := domain.ValidateMilestoneID(in.MilestoneID); err != nil {
		return nil, err
	}

	// Milestone artifacts share their id prefix with the issues beneath
	// them; any match proves the milestone tree exists.
	if _, err := uc.artifacts.Find(in.MilestoneID); err != nil && !errors.Is(err, domain.ErrAmbiguousArtifact) {
		return nil, fmt.Errorf("find milestone %s: %w", in.MilestoneID, err)
	}

	content, err := uc.bridge.MilestoneContext(ctx, in.MilestoneID, in.Options)
	if err != nil {
		return nil, fmt.Errorf("render milestone context: %w", err)
	}

	return &MilestoneContextOutput{Content: content}, nil
}
