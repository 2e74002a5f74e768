package domain

import (
	"fmt"
	"time"
)

// Event kinds recorded in an artifact's event log.
const (
	EventCompleted = "completed"
)

// TriggerPRMerged marks events recorded in response to a pull request merge.
const TriggerPRMerged = "pr_merged"

// Event is a single entry in an artifact's event log.
// Field order matches the on-disk order: event, timestamp, actor, trigger.
type Event struct {
	Kind      string    `yaml:"event"`
	Timestamp time.Time `yaml:"timestamp"`
	Actor     string    `yaml:"actor"`
	Trigger   string    `yaml:"trigger"`
}

// Artifact is the decoded metadata of an issue artifact file.
// Decoding is read-only: display and validation go through this struct,
// while mutation always goes through AppendEvent so that hand-authored
// content is never reflowed or reordered.
type Artifact struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Status string  `yaml:"status"`
	Events []Event `yaml:"events"`
}

// Completed reports whether the artifact already carries a completed event.
func (a *Artifact) Completed() bool {
	for _, ev := range a.Events {
		if ev.Kind == EventCompleted {
			return true
		}
	}
	return false
}

// FormatActor renders the operator identity attached to recorded events.
// Format: "name (email)".
func FormatActor(name, email string) string {
	return fmt.Sprintf("%s (%s)", name, email)
}

// CompletionCommitMessage returns the commit message used when recording
// a completed event for the given issue.
func CompletionCommitMessage(issueID string) string {
	return fmt.Sprintf("%s: chore: Add completed event after PR merge\n\nMarks issue as completed following successful merge to main", issueID)
}
