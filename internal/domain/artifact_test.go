package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArtifactCompleted(t *testing.T) {
	a := &Artifact{
		ID: "A.1.3",
		Events: []Event{
			{Kind: "created", Timestamp: time.Now()},
		},
	}
	assert.False(t, a.Completed())

	a.Events = append(a.Events, Event{Kind: EventCompleted})
	assert.True(t, a.Completed())
}

func TestFormatActor(t *testing.T) {
	assert.Equal(t, "Jane Doe (jane@example.com)", FormatActor("Jane Doe", "jane@example.com"))
}

func TestCompletionCommitMessage(t *testing.T) {
	msg := CompletionCommitMessage("A.1.3")
	assert.Contains(t, msg, "A.1.3: chore: Add completed event after PR merge")
	assert.Contains(t, msg, "successful merge to main")
}
