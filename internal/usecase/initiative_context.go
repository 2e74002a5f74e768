package usecase

import (
	"context"
	"fmt"

	"github.com/kodebase/kode/internal/domain"
)

// InitiativeContextInput contains the parameters for rendering
// initiative context.
type InitiativeContextInput struct {
	InitiativeID string                // Initiative ID (required)
	Options      domain.ContextOptions // Optional sections to include
}

// InitiativeContextOutput contains the rendered context.
type InitiativeContextOutput struct {
	Content string // Rendered context document
}

// InitiativeContext is the use case for aggregating initiative context
// through the external bridge.
type InitiativeContext struct {
	artifacts domain.ArtifactRepository
	bridge    domain.ContextBridge
}

// NewInitiativeContext creates a new InitiativeContext use case.
func NewInitiativeContext(artifacts domain.ArtifactRepository, bridge domain.ContextBridge) *InitiativeContext {
	return &InitiativeContext{
		artifacts: artifacts,
		bridge:    bridge,
	}
}

// Execute validates the initiative and returns its rendered context.
func (uc *InitiativeContext) Execute(ctx context.Context, in InitiativeContextInput) (*InitiativeContextOutput, error) {
	if err := domain.ValidateInitiativeID(in.InitiativeID); err != nil {
		return nil, err
	}

	// Initiative artifacts are named exactly <id>.yml, so a prefix
	// search would also match every milestone and issue beneath it.
	if _, err := uc.artifacts.FindExact(in.InitiativeID); err != nil {
		return nil, fmt.Errorf("find initiative %s: %w", in.InitiativeID, err)
	}

	content, err := uc.bridge.InitiativeContext(ctx, in.InitiativeID, in.Options)
	if err != nil {
		return nil, fmt.Errorf("render initiative context: %w", err)
	}

	return &InitiativeContextOutput{Content: content}, nil
}
