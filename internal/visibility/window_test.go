package visibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

func strPtr(s string) *string { return &s }

// 2025-10-15 is a Wednesday.
func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func TestIsVisible_NilAndEmpty(t *testing.T) {
	ok, err := IsVisible(nil, at(3, 0))
	assert.True(t, ok)
	assert.NoError(t, err)

	ok, err = IsVisible(&model.ScheduleWindow{}, at(3, 0))
	assert.True(t, ok)
	assert.NoError(t, err)
}

func TestIsVisible_NormalRange(t *testing.T) {
	w := &model.ScheduleWindow{TimeStart: strPtr("09:00"), TimeEnd: strPtr("17:00")}

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"midday", at(12, 0), true},
		{"evening", at(20, 0), false},
		{"end is exclusive", at(17, 0), false},
		{"start is inclusive", at(9, 0), true},
		{"just before end", at(16, 59), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsVisible(w, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsVisible_OvernightRange(t *testing.T) {
	w := &model.ScheduleWindow{TimeStart: strPtr("22:00"), TimeEnd: strPtr("03:00")}

	cases := []struct {
		now  time.Time
		want bool
	}{
		{at(23, 30), true},
		{at(2, 0), true},
		{at(12, 0), false},
		{at(22, 0), true},
		{at(3, 0), false},
	}
	for _, tc := range cases {
		got, err := IsVisible(w, tc.now)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.now.Format("15:04"))
	}
}

func TestIsVisible_OneBoundDefaults(t *testing.T) {
	startOnly := &model.ScheduleWindow{TimeStart: strPtr("18:00")}
	got, _ := IsVisible(startOnly, at(17, 59))
	assert.False(t, got)
	got, _ = IsVisible(startOnly, at(23, 0))
	assert.True(t, got)

	endOnly := &model.ScheduleWindow{TimeEnd: strPtr("08:00")}
	got, _ = IsVisible(endOnly, at(0, 0))
	assert.True(t, got)
	got, _ = IsVisible(endOnly, at(8, 0))
	assert.False(t, got)
}

func TestIsVisible_DaysOfWeek(t *testing.T) {
	weekend := &model.ScheduleWindow{DaysOfWeek: []int{0, 6}}
	got, _ := IsVisible(weekend, at(12, 0))
	assert.False(t, got)

	sat := time.Date(2025, 10, 18, 12, 0, 0, 0, time.UTC)
	got, _ = IsVisible(weekend, sat)
	assert.True(t, got)
}

func TestIsVisible_DayCheckShortCircuits(t *testing.T) {
	w := &model.ScheduleWindow{DaysOfWeek: []int{1}, TimeStart: strPtr("garbage")}
	got, err := IsVisible(w, at(12, 0))
	assert.False(t, got)
	assert.NoError(t, err)
}

func TestIsVisible_MalformedBoundIsIgnored(t *testing.T) {
	w := &model.ScheduleWindow{TimeStart: strPtr("9am"), TimeEnd: strPtr("17:00")}

	got, err := IsVisible(w, at(6, 0))
	assert.True(t, got, "start falls back to midnight")
	assert.ErrorIs(t, err, model.ErrMalformedTime)

	got, err = IsVisible(w, at(18, 0))
	assert.False(t, got)
	assert.ErrorIs(t, err, model.ErrMalformedTime)
}

func TestIsVisible_BothBoundsMalformed(t *testing.T) {
	w := &model.ScheduleWindow{TimeStart: strPtr("25:00"), TimeEnd: strPtr("x")}
	got, err := IsVisible(w, at(4, 0))
	assert.True(t, got)
	assert.ErrorIs(t, err, model.ErrMalformedTime)
}

func TestIsVisible_SecondsFormat(t *testing.T) {
	w := &model.ScheduleWindow{TimeStart: strPtr("09:00:00"), TimeEnd: strPtr("10:30:00")}
	got, err := IsVisible(w, at(10, 29))
	require.NoError(t, err)
	assert.True(t, got)
}
