package visibility

import (
	"time"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

// RepublishHour is the local hour at which snoozed slides come back.
const RepublishHour = 1

// EffectivelyPublished combines the owner's publish flag with a temporary
// unpublish. An expiry that has passed is ignored even if it is still stored.
func EffectivelyPublished(s model.Slide, now time.Time) bool {
	if !s.IsPublished {
		return false
	}
	return s.TemporaryUnpublishUntil == nil || !now.Before(*s.TemporaryUnpublishUntil)
}

// NextRepublishAt returns the next 01:00 in now's location: today's if now is
// still before it, otherwise tomorrow's.
func NextRepublishAt(now time.Time) time.Time {
	y, m, d := now.Date()
	at := time.Date(y, m, d, RepublishHour, 0, 0, 0, now.Location())
	if now.Before(at) {
		return at
	}
	return time.Date(y, m, d+1, RepublishHour, 0, 0, 0, now.Location())
}
