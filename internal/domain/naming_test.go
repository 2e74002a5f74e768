package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIssueID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"A.1.3", false},
		{"Z.12.345", false},
		{"A.1", true},
		{"A", true},
		{"a.1.3", true},
		{"A.1.3.4", true},
		{"", true},
		{"A..3", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateIssueID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIssueID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMilestoneID(t *testing.T) {
	assert.NoError(t, ValidateMilestoneID("A.1"))
	assert.NoError(t, ValidateMilestoneID("B.42"))
	assert.ErrorIs(t, ValidateMilestoneID("A"), ErrInvalidMilestoneID)
	assert.ErrorIs(t, ValidateMilestoneID("A.1.3"), ErrInvalidMilestoneID)
	assert.ErrorIs(t, ValidateMilestoneID("1.A"), ErrInvalidMilestoneID)
}

func TestValidateInitiativeID(t *testing.T) {
	assert.NoError(t, ValidateInitiativeID("A"))
	assert.NoError(t, ValidateInitiativeID("Z"))
	assert.ErrorIs(t, ValidateInitiativeID("AB"), ErrInvalidInitiativeID)
	assert.ErrorIs(t, ValidateInitiativeID("a"), ErrInvalidInitiativeID)
	assert.ErrorIs(t, ValidateInitiativeID("A.1"), ErrInvalidInitiativeID)
}
