// Package visibility decides whether a slide may be shown at a given instant.
package visibility

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

const lastMinuteOfDay = 23*60 + 59

// IsVisible evaluates a schedule window at now, using now's location for the
// weekday and the time of day. A nil window is always visible.
//
// A bound that cannot be parsed is treated as absent. err then describes the
// ignored bounds; visible is still the verdict to use.
func IsVisible(w *model.ScheduleWindow, now time.Time) (visible bool, err error) {
	if w == nil {
		return true, nil
	}

	if len(w.DaysOfWeek) > 0 && !slices.Contains(w.DaysOfWeek, int(now.Weekday())) {
		return false, nil
	}

	start, startErr := parseBound(w.TimeStart, "start")
	end, endErr := parseBound(w.TimeEnd, "end")
	err = errors.Join(startErr, endErr)

	if start == nil && end == nil {
		return true, err
	}

	startMin, endMin := 0, lastMinuteOfDay
	if start != nil {
		startMin = start.Minutes()
	}
	if end != nil {
		endMin = end.Minutes()
	}

	current := now.Hour()*60 + now.Minute()
	if startMin <= endMin {
		return current >= startMin && current < endMin, err
	}
	// overnight, e.g. 22:00-03:00
	return current >= startMin || current < endMin, err
}

func parseBound(raw *string, name string) (*model.Clock, error) {
	if raw == nil {
		return nil, nil
	}
	c, err := model.ParseClock(*raw)
	if err != nil {
		return nil, fmt.Errorf("time %s: %w", name, err)
	}
	return &c, nil
}
