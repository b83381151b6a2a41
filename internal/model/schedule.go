package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ScheduleWindow limits a slide to certain weekdays and a time-of-day range.
// TimeStart and TimeEnd hold the stored "HH:MM" text; an empty DaysOfWeek
// means every day.
type ScheduleWindow struct {
	DaysOfWeek []int   `json:"days_of_week,omitempty"`
	TimeStart  *string `json:"time_start,omitempty"`
	TimeEnd    *string `json:"time_end,omitempty"`
}

// Empty reports whether the window places no restriction at all.
func (w ScheduleWindow) Empty() bool {
	return len(w.DaysOfWeek) == 0 && w.TimeStart == nil && w.TimeEnd == nil
}

// Clock is a local time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// ParseClock accepts "HH:MM" and the "HH:MM:SS" form Postgres returns for TIME
// columns. Seconds are ignored.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Clock{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return Clock{}, fmt.Errorf("%w: %q has a bad hour", ErrMalformedTime, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("%w: %q has a bad minute", ErrMalformedTime, s)
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return Clock{}, fmt.Errorf("%w: %q has a bad second", ErrMalformedTime, s)
		}
	}
	return Clock{Hour: h, Minute: m}, nil
}
