package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() Event {
	return Event{
		Kind:      EventCompleted,
		Timestamp: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		Actor:     "Jane Doe (jane@example.com)",
		Trigger:   TriggerPRMerged,
	}
}

func TestAppendEvent_InsertBeforeSiblingField(t *testing.T) {
	doc := `id: A.1.3
title: Fix login bug
events:
  - event: created
    timestamp: 2025-05-20T09:00:00Z
    actor: Jane Doe (jane@example.com)
    trigger: manual
status: in_progress
`

	out, inserted, err := AppendEvent(doc, testEvent())

	require.NoError(t, err)
	assert.True(t, inserted)

	lines := strings.Split(out, "\n")
	idx := -1
	for i, line := range lines {
		if line == "  - event: completed" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0, "completed entry should be present")

	// Block sits after the existing entry and strictly before the next
	// top-level field.
	assert.Equal(t, "    timestamp: 2025-06-01T12:30:00Z", lines[idx+1])
	assert.Equal(t, "    actor: Jane Doe (jane@example.com)", lines[idx+2])
	assert.Equal(t, "    trigger: pr_merged", lines[idx+3])
	assert.Equal(t, "status: in_progress", lines[idx+4])
}

func TestAppendEvent_SectionAtEndOfFile(t *testing.T) {
	doc := `id: A.1.3
events:
  - event: created
    timestamp: 2025-05-20T09:00:00Z
    actor: Jane Doe (jane@example.com)
    trigger: manual
`

	out, inserted, err := AppendEvent(doc, testEvent())

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.True(t, strings.HasSuffix(out, "    trigger: pr_merged\n"),
		"block should be appended at the end with the trailing newline kept")
	assert.NotContains(t, out, "\n\n", "no blank-line drift on append")
}

func TestAppendEvent_NoTrailingNewline(t *testing.T) {
	doc := "id: A.2.1\nevents:"

	out, inserted, err := AppendEvent(doc, testEvent())

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, "id: A.2.1\nevents:\n  - event: completed\n    timestamp: 2025-06-01T12:30:00Z\n    actor: Jane Doe (jane@example.com)\n    trigger: pr_merged", out)
}

func TestAppendEvent_Idempotent(t *testing.T) {
	doc := `id: A.1.3
events:
  - event: created
    timestamp: 2025-05-20T09:00:00Z
    actor: Jane Doe (jane@example.com)
    trigger: manual
status: in_progress
`

	first, inserted, err := AppendEvent(doc, testEvent())
	require.NoError(t, err)
	require.True(t, inserted)

	second, inserted, err := AppendEvent(first, testEvent())
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, first, second, "second append must be byte-identical")
	assert.Equal(t, 1, strings.Count(second, "event: completed"))
}

func TestAppendEvent_PreservesUnrelatedContent(t *testing.T) {
	doc := `id: A.1.3
title: "Fix: login   bug"   # odd spacing, kept verbatim
description: |
  Multi-line text with a colon: here.

  And a blank line above.
events:
  - event: created
    timestamp: 2025-05-20T09:00:00Z
    actor: Jane Doe (jane@example.com)
    trigger: manual
notes: trailing field
`

	out, inserted, err := AppendEvent(doc, testEvent())
	require.NoError(t, err)
	require.True(t, inserted)

	// Every original line survives, in order.
	outLines := strings.Split(out, "\n")
	i := 0
	for _, want := range strings.Split(doc, "\n") {
		found := false
		for ; i < len(outLines); i++ {
			if outLines[i] == want {
				found = true
				i++
				break
			}
		}
		require.True(t, found, "original line %q missing or reordered", want)
	}
}

func TestAppendEvent_BlankLinesInsideSection(t *testing.T) {
	doc := `events:
  - event: created
    timestamp: 2025-05-20T09:00:00Z
    actor: Jane Doe (jane@example.com)
    trigger: manual

  - event: reopened
    timestamp: 2025-05-21T09:00:00Z
    actor: Jane Doe (jane@example.com)
    trigger: manual
status: open
`

	out, inserted, err := AppendEvent(doc, testEvent())
	require.NoError(t, err)
	assert.True(t, inserted)

	// The new entry lands after both existing entries, before status.
	reopened := strings.Index(out, "event: reopened")
	completed := strings.Index(out, "event: completed")
	status := strings.Index(out, "status: open")
	assert.Greater(t, completed, reopened)
	assert.Greater(t, status, completed)
}

func TestAppendEvent_IndentedSection(t *testing.T) {
	doc := `issue:
  id: A.1.3
  events:
    - event: created
      timestamp: 2025-05-20T09:00:00Z
      actor: Jane Doe (jane@example.com)
      trigger: manual
archived: false
`

	out, inserted, err := AppendEvent(doc, testEvent())
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Contains(t, out, "    - event: completed\n      timestamp: 2025-06-01T12:30:00Z")
}

func TestAppendEvent_MissingSection(t *testing.T) {
	doc := "id: A.1.3\ntitle: No log here\n"

	out, inserted, err := AppendEvent(doc, testEvent())

	assert.ErrorIs(t, err, ErrEventsSectionMissing)
	assert.False(t, inserted)
	assert.Equal(t, doc, out, "input returned unchanged on structural error")
}

func TestAppendEvent_RepeatedAppendsKeepSingleMarker(t *testing.T) {
	doc := "events:\n"
	for i := 0; i < 5; i++ {
		next, _, err := AppendEvent(doc, testEvent())
		require.NoError(t, err)
		doc = next
	}
	assert.Equal(t, 1, strings.Count(doc, "event: completed"))
}
