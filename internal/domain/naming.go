package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Identifier formats. An initiative is a single letter, a milestone adds
// one numeric segment, an issue adds a second (e.g. A, A.1, A.1.3).
// Issue identifiers double as branch names.
var (
	initiativeIDPattern = regexp.MustCompile(`^[A-Z]$`)
	milestoneIDPattern  = regexp.MustCompile(`^[A-Z]\.\d+$`)
	issueIDPattern      = regexp.MustCompile(`^[A-Z]\.\d+\.\d+$`)
)

// ValidateInitiativeID checks that id is a well-formed initiative identifier.
func ValidateInitiativeID(id string) error {
	if !initiativeIDPattern.MatchString(id) {
		return fmt.Errorf("%q (expected format: A, B, ...): %w", id, ErrInvalidInitiativeID)
	}
	return nil
}

// ValidateMilestoneID checks that id is a well-formed milestone identifier.
func ValidateMilestoneID(id string) error {
	if !milestoneIDPattern.MatchString(id) {
		return fmt.Errorf("%q (expected format: A.1, B.2, ...): %w", id, ErrInvalidMilestoneID)
	}
	return nil
}

// ValidateIssueID checks that id is a well-formed issue identifier.
func ValidateIssueID(id string) error {
	if !issueIDPattern.MatchString(id) {
		return fmt.Errorf("%q (expected format: A.1.3): %w", id, ErrInvalidIssueID)
	}
	return nil
}

// KodebaseDir returns the path to the .kodebase directory of a repository.
func KodebaseDir(repoRoot string) string {
	return filepath.Join(repoRoot, ".kodebase")
}

// ConfigFileName is the repository configuration file under .kodebase.
const ConfigFileName = "config.toml"

// GlobalLogPath returns the path to the workflow log file.
func GlobalLogPath(kodebaseDir string) string {
	return filepath.Join(kodebaseDir, "logs", "kode.log")
}
