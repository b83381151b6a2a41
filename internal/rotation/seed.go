package rotation

import (
	"time"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

// CurrentSeed returns the epoch-millisecond start of the seed window holding
// now. Windows are cut on now's own location: hourly at :00, daily at local
// midnight, weekly at Sunday midnight. Unknown intervals bucket daily.
func CurrentSeed(interval model.RotationInterval, now time.Time) int64 {
	return WindowStart(interval, now).UnixMilli()
}

// WindowStart returns the first instant of the seed window holding now.
func WindowStart(interval model.RotationInterval, now time.Time) time.Time {
	y, m, d := now.Date()
	loc := now.Location()

	switch interval {
	case model.RotationHourly:
		return time.Date(y, m, d, now.Hour(), 0, 0, 0, loc)
	case model.RotationWeekly:
		return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
}

// NextWindowStart returns the first instant of the following seed window.
func NextWindowStart(interval model.RotationInterval, now time.Time) time.Time {
	start := WindowStart(interval, now)
	y, m, d := start.Date()

	switch interval {
	case model.RotationHourly:
		return time.Date(y, m, d, start.Hour()+1, 0, 0, 0, start.Location())
	case model.RotationWeekly:
		return time.Date(y, m, d+7, 0, 0, 0, 0, start.Location())
	default:
		return time.Date(y, m, d+1, 0, 0, 0, 0, start.Location())
	}
}
