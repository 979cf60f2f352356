package loan

import (
	"testing"

	"campusloans/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		status types.ApplicationStatus
		icon   string
		tone   BadgeTone
	}{
		{types.ApplicationStatusPending, "clock", ToneNeutral},
		{types.ApplicationStatusUnderReview, "clock", ToneNeutral},
		{types.ApplicationStatusApproved, "check", TonePositive},
		{types.ApplicationStatusDisbursed, "check", TonePositive},
		{types.ApplicationStatusRejected, "cross", ToneNegative},
	}

	for _, tt := range tests {
		badge := BadgeFor(tt.status)
		assert.Equal(t, tt.icon, badge.Icon, "icon for %s", tt.status)
		assert.Equal(t, tt.tone, badge.Tone, "tone for %s", tt.status)
	}
}

func TestBadgeForUnknownStatusFallsBack(t *testing.T) {
	badge := BadgeFor(types.ApplicationStatus("Escalated"))
	assert.Equal(t, Badge{Icon: "clock", Tone: ToneNeutral}, badge)
}

func TestBadgeLookupCoversAllStatuses(t *testing.T) {
	all := []types.ApplicationStatus{
		types.ApplicationStatusPending,
		types.ApplicationStatusUnderReview,
		types.ApplicationStatusApproved,
		types.ApplicationStatusDisbursed,
		types.ApplicationStatusRejected,
	}

	for _, status := range all {
		_, ok := statusBadges[status]
		assert.True(t, ok, "status %s missing from badge lookup", status)
	}
}
