package loan

import "campusloans/pkg/types"

type BadgeTone string

const (
	ToneNeutral  BadgeTone = "neutral"
	TonePositive BadgeTone = "positive"
	ToneNegative BadgeTone = "negative"
)

type Badge struct {
	Icon string
	Tone BadgeTone
}

// statusBadges is the exhaustive status-to-display lookup. Keep every
// ApplicationStatus constant present in here.
var statusBadges = map[types.ApplicationStatus]Badge{
	types.ApplicationStatusPending:     {Icon: "clock", Tone: ToneNeutral},
	types.ApplicationStatusUnderReview: {Icon: "clock", Tone: ToneNeutral},
	types.ApplicationStatusApproved:    {Icon: "check", Tone: TonePositive},
	types.ApplicationStatusDisbursed:   {Icon: "check", Tone: TonePositive},
	types.ApplicationStatusRejected:    {Icon: "cross", Tone: ToneNegative},
}

// BadgeFor maps a status to its badge. Unknown statuses fall back to the
// neutral clock so a new backend status never breaks rendering.
func BadgeFor(status types.ApplicationStatus) Badge {
	if b, ok := statusBadges[status]; ok {
		return b
	}
	return Badge{Icon: "clock", Tone: ToneNeutral}
}
