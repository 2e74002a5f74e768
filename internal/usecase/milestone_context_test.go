package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodebase/kode/internal/domain"
	"github.com/kodebase/kode/internal/testutil"
)

func TestMilestoneContext_RendersThroughBridge(t *testing.T) {
	artifacts := testutil.NewMockArtifacts(map[string]string{"A.1.yml": "id: A.1\n"})
	bridge := &testutil.MockBridge{Rendered: "# Milestone A.1\n"}
	uc := NewMilestoneContext(artifacts, bridge)

	out, err := uc.Execute(context.Background(), MilestoneContextInput{
		MilestoneID: "A.1",
		Options:     domain.ContextOptions{IncludeCompletionAnalysis: true},
	})

	require.NoError(t, err)
	assert.Equal(t, "# Milestone A.1\n", out.Content)
	assert.Equal(t, "milestone", bridge.Unit)
	assert.Equal(t, "A.1", bridge.ID)
	assert.True(t, bridge.Opts.IncludeCompletionAnalysis)
}

func TestMilestoneContext_IssueFilesShareThePrefix(t *testing.T) {
	artifacts := testutil.NewMockArtifacts(map[string]string{
		"A.1.yml":             "id: A.1\n",
		"A.1.3-fix-login.yml": issueDoc,
	})
	bridge := &testutil.MockBridge{Rendered: "# Milestone A.1\n"}
	uc := NewMilestoneContext(artifacts, bridge)

	out, err := uc.Execute(context.Background(), MilestoneContextInput{MilestoneID: "A.1"})

	require.NoError(t, err)
	assert.Equal(t, "# Milestone A.1\n", out.Content)
}

func TestMilestoneContext_NotFound(t *testing.T) {
	bridge := &testutil.MockBridge{}
	uc := NewMilestoneContext(testutil.NewMockArtifacts(nil), bridge)

	_, err := uc.Execute(context.Background(), MilestoneContextInput{MilestoneID: "A.1"})

	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	assert.Empty(t, bridge.Unit, "bridge not invoked without an artifact")
}

func TestMilestoneContext_InvalidID(t *testing.T) {
	uc := NewMilestoneContext(testutil.NewMockArtifacts(nil), &testutil.MockBridge{})

	_, err := uc.Execute(context.Background(), MilestoneContextInput{MilestoneID: "A.1.3"})

	assert.ErrorIs(t, err, domain.ErrInvalidMilestoneID)
}

func TestMilestoneContext_BridgeFailure(t *testing.T) {
	artifacts := testutil.NewMockArtifacts(map[string]string{"A.1.yml": "id: A.1\n"})
	bridge := &testutil.MockBridge{Err: errors.New("bridge exited with status 1")}
	uc := NewMilestoneContext(artifacts, bridge)

	_, err := uc.Execute(context.Background(), MilestoneContextInput{MilestoneID: "A.1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "render milestone context")
}
