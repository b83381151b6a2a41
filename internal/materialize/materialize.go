// Package materialize turns a row snapshot into the slides to show at an instant.
package materialize

import (
	"cmp"
	"slices"
	"time"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
	"github.com/Nixie-Tech-LLC/marquee/internal/rotation"
	"github.com/Nixie-Tech-LLC/marquee/internal/visibility"
)

// Result is the materialized view of one row.
type Result struct {
	Slides []model.Slide
	// Rotated is set when Slides is a seeded selection; Seed and
	// NextRotation then describe the seed window.
	Rotated      bool
	Seed         int64
	NextRotation time.Time
	Diagnostics  []model.Diagnostic
}

// Materialize filters slides by effective publish state and schedule window,
// then either rotates them or returns them in manual order. slides is not
// modified.
func Materialize(row model.Row, slides []model.Slide, now time.Time) Result {
	var res Result

	eligible := make([]model.Slide, 0, len(slides))
	for _, s := range slides {
		if !visibility.EffectivelyPublished(s, now) {
			continue
		}
		visible, err := visibility.IsVisible(s.Schedule, now)
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, model.Diagnostic{
				Kind:      model.DiagMalformedTime,
				SubjectID: s.ID,
				Err:       err,
			})
		}
		if visible {
			eligible = append(eligible, s)
		}
	}

	ordered := ManualOrder(eligible)

	plan, ok, err := row.Rotation()
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, model.Diagnostic{
			Kind:      model.DiagInvalidRotationCount,
			SubjectID: row.ID,
			Err:       err,
		})
	}
	if !ok {
		res.Slides = ordered
		return res
	}

	res.Rotated = true
	res.Seed = rotation.CurrentSeed(plan.Interval, now)
	res.NextRotation = rotation.NextWindowStart(plan.Interval, now)
	res.Slides = rotation.Select(ordered, plan.Count, res.Seed)
	return res
}

// ManualOrder returns a copy of slides sorted by DisplayOrder. Equal orders
// keep insertion order; ids never take part in the comparison.
func ManualOrder(slides []model.Slide) []model.Slide {
	out := slices.Clone(slides)
	if out == nil {
		out = []model.Slide{}
	}
	slices.SortStableFunc(out, func(a, b model.Slide) int {
		if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
			return c
		}
		return cmp.Compare(a.InsertSeq, b.InsertSeq)
	})
	return out
}

// SortRows orders rows the same way slides are ordered.
func SortRows(rows []model.Row) []model.Row {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b model.Row) int {
		if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
			return c
		}
		return cmp.Compare(a.InsertSeq, b.InsertSeq)
	})
	return out
}
