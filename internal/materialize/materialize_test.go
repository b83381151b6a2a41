package materialize

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
	"github.com/Nixie-Tech-LLC/marquee/internal/rotation"
)

var now = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func interval(i model.RotationInterval) *model.RotationInterval { return &i }

func slide(title string, order int, seq int64) model.Slide {
	return model.Slide{
		ID:           uuid.New(),
		Kind:         model.KindSlide,
		Title:        title,
		DisplayOrder: order,
		InsertSeq:    seq,
		IsPublished:  true,
	}
}

func titles(slides []model.Slide) []string {
	out := make([]string, len(slides))
	for i, s := range slides {
		out[i] = s.Title
	}
	return out
}

func TestMaterialize_ManualOrderIsStable(t *testing.T) {
	row := model.Row{ID: uuid.New()}
	in := []model.Slide{
		slide("c", 2, 1),
		slide("a", 0, 2),
		slide("b1", 1, 3),
		slide("b2", 1, 4),
	}

	first := Materialize(row, in, now)
	second := Materialize(row, in, now.Add(3*time.Hour))

	assert.Equal(t, []string{"a", "b1", "b2", "c"}, titles(first.Slides))
	assert.Equal(t, titles(first.Slides), titles(second.Slides))
	assert.False(t, first.Rotated)
	assert.Empty(t, first.Diagnostics)
	assert.Equal(t, "c", in[0].Title, "input left untouched")
}

func TestMaterialize_TiesNeverUseIDs(t *testing.T) {
	row := model.Row{ID: uuid.New()}
	first := slide("first", 0, 1)
	first.ID = uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
	second := slide("second", 0, 2)
	second.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

	res := Materialize(row, []model.Slide{first, second}, now)
	assert.Equal(t, []string{"first", "second"}, titles(res.Slides))
}

func TestMaterialize_FiltersPublishAndSnooze(t *testing.T) {
	row := model.Row{ID: uuid.New()}
	hidden := slide("hidden", 0, 1)
	hidden.IsPublished = false

	snoozed := slide("snoozed", 1, 2)
	later := now.Add(time.Hour)
	snoozed.TemporaryUnpublishUntil = &later

	expired := slide("expired", 2, 3)
	earlier := now.Add(-time.Minute)
	expired.TemporaryUnpublishUntil = &earlier

	res := Materialize(row, []model.Slide{hidden, snoozed, expired, slide("plain", 3, 4)}, now)
	assert.Equal(t, []string{"expired", "plain"}, titles(res.Slides))
}

func TestMaterialize_FiltersSchedule(t *testing.T) {
	row := model.Row{ID: uuid.New()}
	morning := slide("morning", 0, 1)
	morning.Schedule = &model.ScheduleWindow{TimeStart: strPtr("06:00"), TimeEnd: strPtr("11:00")}

	lunch := slide("lunch", 1, 2)
	lunch.Schedule = &model.ScheduleWindow{TimeStart: strPtr("11:30"), TimeEnd: strPtr("14:00")}

	res := Materialize(row, []model.Slide{morning, lunch}, now)
	assert.Equal(t, []string{"lunch"}, titles(res.Slides))
}

func TestMaterialize_MalformedTimeIsDiagnosed(t *testing.T) {
	row := model.Row{ID: uuid.New()}
	bad := slide("bad", 0, 1)
	bad.Schedule = &model.ScheduleWindow{TimeStart: strPtr("noon"), TimeEnd: strPtr("13:00")}

	res := Materialize(row, []model.Slide{bad, slide("ok", 1, 2)}, now)

	assert.Equal(t, []string{"bad", "ok"}, titles(res.Slides))
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, model.DiagMalformedTime, res.Diagnostics[0].Kind)
	assert.Equal(t, bad.ID, res.Diagnostics[0].SubjectID)
	assert.ErrorIs(t, res.Diagnostics[0], model.ErrMalformedTime)
}

func TestMaterialize_Rotation(t *testing.T) {
	row := model.Row{
		ID:               uuid.New(),
		RotationEnabled:  true,
		RotationCount:    intPtr(2),
		RotationInterval: interval(model.RotationDaily),
	}
	in := []model.Slide{slide("a", 0, 1), slide("b", 1, 2), slide("c", 2, 3), slide("d", 3, 4)}

	res := Materialize(row, in, now)
	require.True(t, res.Rotated)
	assert.Len(t, res.Slides, 2)

	seed := rotation.CurrentSeed(model.RotationDaily, now)
	assert.Equal(t, seed, res.Seed)
	assert.Equal(t, titles(rotation.Select(in, 2, seed)), titles(res.Slides))
	assert.Equal(t, time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), res.NextRotation)

	laterSameDay := Materialize(row, in, now.Add(11*time.Hour))
	assert.Equal(t, titles(res.Slides), titles(laterSameDay.Slides))
}

func TestMaterialize_RotationIgnoresFetchOrder(t *testing.T) {
	row := model.Row{
		ID:               uuid.New(),
		RotationEnabled:  true,
		RotationCount:    intPtr(3),
		RotationInterval: interval(model.RotationHourly),
	}
	a, b, c, d := slide("a", 0, 1), slide("b", 1, 2), slide("c", 2, 3), slide("d", 3, 4)

	one := Materialize(row, []model.Slide{a, b, c, d}, now)
	two := Materialize(row, []model.Slide{d, c, b, a}, now)
	assert.Equal(t, titles(one.Slides), titles(two.Slides))
}

func TestMaterialize_RotationCountAbovePool(t *testing.T) {
	row := model.Row{
		ID:               uuid.New(),
		RotationEnabled:  true,
		RotationCount:    intPtr(10),
		RotationInterval: interval(model.RotationWeekly),
	}
	in := []model.Slide{slide("a", 0, 1), slide("b", 1, 2), slide("c", 2, 3)}

	res := Materialize(row, in, now)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, titles(res.Slides))
}

func TestMaterialize_InvalidRotationCountFallsBack(t *testing.T) {
	row := model.Row{
		ID:               uuid.New(),
		RotationEnabled:  true,
		RotationCount:    intPtr(0),
		RotationInterval: interval(model.RotationDaily),
	}
	in := []model.Slide{slide("b", 1, 1), slide("a", 0, 2)}

	res := Materialize(row, in, now)
	assert.False(t, res.Rotated)
	assert.Equal(t, []string{"a", "b"}, titles(res.Slides))
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, model.DiagInvalidRotationCount, res.Diagnostics[0].Kind)
	assert.ErrorIs(t, res.Diagnostics[0], model.ErrInvalidRotation)
}

func TestMaterialize_EmptyRow(t *testing.T) {
	res := Materialize(model.Row{ID: uuid.New()}, nil, now)
	assert.NotNil(t, res.Slides)
	assert.Empty(t, res.Slides)
}

func TestSortRows(t *testing.T) {
	rows := []model.Row{
		{Name: "z", DisplayOrder: 1, InsertSeq: 1},
		{Name: "x", DisplayOrder: 0, InsertSeq: 3},
		{Name: "y", DisplayOrder: 0, InsertSeq: 2},
	}
	sorted := SortRows(rows)
	assert.Equal(t, "y", sorted[0].Name)
	assert.Equal(t, "x", sorted[1].Name)
	assert.Equal(t, "z", sorted[2].Name)
}
