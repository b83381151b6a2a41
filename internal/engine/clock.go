package engine

import "time"

// ZoneClock reads the wall clock in a fixed location.
type ZoneClock struct {
	Location *time.Location
}

func (c ZoneClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
