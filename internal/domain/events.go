package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// indentUnit is the fixed indentation step used by artifact files.
const indentUnit = "  "

// eventsSectionPattern matches the declaration line of the event log
// section at any indentation level.
var eventsSectionPattern = regexp.MustCompile(`^(\s*)events:`)

// AppendEvent inserts ev into the events section of doc and returns the
// mutated text. It is a line-oriented insertion, not a parse/re-serialize
// round trip: every line the appender does not add is carried through
// byte-for-byte, so hand-authored content stays untouched.
//
// The returned bool reports whether the event was inserted. If the
// document already contains a marker line for the event kind the input is
// returned unchanged with false, making repeated appends idempotent.
// A document without an events section yields ErrEventsSectionMissing.
func AppendEvent(doc string, ev Event) (string, bool, error) {
	// Conservative duplicate guard: the literal marker anywhere in the
	// document counts as already recorded.
	if strings.Contains(doc, "event: "+ev.Kind) {
		return doc, false, nil
	}

	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines)+4)

	found := false
	inEvents := false
	inserted := false
	baseIndent := ""

	for _, line := range lines {
		if !found {
			if m := eventsSectionPattern.FindStringSubmatch(line); m != nil {
				found = true
				inEvents = true
				baseIndent = m[1]
				out = append(out, line)
				continue
			}
		}

		// A non-blank line at column 0 containing a key delimiter starts
		// the next top-level field and therefore ends the events section.
		if inEvents && !inserted && startsTopLevelField(line) {
			out = append(out, renderEventBlock(baseIndent, ev)...)
			inserted = true
			inEvents = false
		}

		out = append(out, line)
	}

	// Section ran to end-of-file: append the block after the last
	// non-blank line so the trailing terminator (if any) is kept in place.
	if inEvents && !inserted {
		tail := len(out)
		for tail > 0 && strings.TrimSpace(out[tail-1]) == "" {
			tail--
		}
		block := renderEventBlock(baseIndent, ev)
		out = append(out[:tail], append(block, out[tail:]...)...)
		inserted = true
	}

	if !inserted {
		return doc, false, fmt.Errorf("append %s event: %w", ev.Kind, ErrEventsSectionMissing)
	}

	return strings.Join(out, "\n"), true, nil
}

// startsTopLevelField reports whether line begins the next top-level
// field of the document.
func startsTopLevelField(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if line[0] == ' ' || line[0] == '\t' {
		return false
	}
	return strings.Contains(line, ":")
}

// renderEventBlock renders the event as a one-item list entry under the
// events section: the kind field at one indent unit past the section
// declaration, the remaining fields at two.
func renderEventBlock(baseIndent string, ev Event) []string {
	itemIndent := baseIndent + indentUnit
	fieldIndent := itemIndent + indentUnit
	return []string{
		itemIndent + "- event: " + ev.Kind,
		fieldIndent + "timestamp: " + ev.Timestamp.UTC().Format(time.RFC3339),
		fieldIndent + "actor: " + ev.Actor,
		fieldIndent + "trigger: " + ev.Trigger,
	}
}
