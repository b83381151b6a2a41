// Package engine serves row views and applies snooze, republish and reorder
// actions on top of a record store.
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/materialize"
	"github.com/Nixie-Tech-LLC/marquee/internal/model"
	"github.com/Nixie-Tech-LLC/marquee/internal/visibility"
)

type Engine struct {
	store    Store
	notifier Notifier
	metrics  Metrics
	clock    Clock
	intn     func(n int) int
}

type Option func(*Engine)

func WithNotifier(n Notifier) Option { return func(e *Engine) { e.notifier = n } }
func WithMetrics(m Metrics) Option   { return func(e *Engine) { e.metrics = m } }
func WithClock(c Clock) Option       { return func(e *Engine) { e.clock = c } }

// WithRandom replaces the draw used to pick among random-eligible slides.
func WithRandom(intn func(n int) int) Option { return func(e *Engine) { e.intn = intn } }

func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		notifier: nopNotifier{},
		metrics:  nopMetrics{},
		clock:    ZoneClock{Location: time.Local},
		intn:     rand.IntN,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RowView is a materialized row.
type RowView struct {
	Row model.Row
	At  time.Time
	materialize.Result
}

// Now returns the engine clock's current instant.
func (e *Engine) Now() time.Time { return e.clock.Now() }

// VisibleSlides materializes a row at the given instant, or at the clock's
// now when at is zero. at is moved into the clock's location first so seed
// windows and schedule windows are cut in the display zone.
func (e *Engine) VisibleSlides(ctx context.Context, rowID uuid.UUID, at time.Time) (RowView, error) {
	now := e.clock.Now()
	if !at.IsZero() {
		at = at.In(now.Location())
	} else {
		at = now
	}

	row, err := e.store.FetchRow(ctx, rowID)
	if err != nil {
		return RowView{}, err
	}
	slides, err := e.store.FetchSlides(ctx, rowID)
	if err != nil {
		return RowView{}, err
	}

	res := materialize.Materialize(row, slides, at)
	e.report(res.Diagnostics, rowID)
	e.metrics.RecordMaterialized(res.Rotated)

	log.Debug().Str("row_id", rowID.String()).
		Int("fetched", len(slides)).
		Int("visible", len(res.Slides)).
		Bool("rotated", res.Rotated).
		Msg("[engine] row materialized")

	return RowView{Row: row, At: at, Result: res}, nil
}

// ActiveSlide picks the single slide a playlist player should run now.
func (e *Engine) ActiveSlide(ctx context.Context, rowID uuid.UUID) (model.Slide, bool, error) {
	view, err := e.VisibleSlides(ctx, rowID, time.Time{})
	if err != nil {
		return model.Slide{}, false, err
	}
	s, ok := materialize.PickActive(view.Slides, e.intn)
	return s, ok, nil
}

// Rows lists every row in manual order.
func (e *Engine) Rows(ctx context.Context) ([]model.Row, error) {
	rows, err := e.store.FetchRows(ctx)
	if err != nil {
		return nil, err
	}
	return materialize.SortRows(rows), nil
}

// Snooze hides a slide until the next 01:00 in the display zone.
func (e *Engine) Snooze(ctx context.Context, slideID uuid.UUID) (model.Slide, error) {
	now := e.clock.Now()
	until := visibility.NextRepublishAt(now)

	s, err := e.store.SetTemporaryUnpublish(ctx, slideID, until)
	if err != nil {
		return model.Slide{}, err
	}
	e.metrics.RecordSnooze()

	log.Info().Str("slide_id", slideID.String()).Str("row_id", s.RowID.String()).
		Time("until", until).Msg("[engine] slide snoozed")

	e.notify(ctx, RowEvent{RowID: s.RowID, Action: ActionSnoozed, SlideIDs: []uuid.UUID{slideID}, At: now})
	return s, nil
}

// RepublishResult lists the slides whose snooze was cleared.
type RepublishResult struct {
	Count    int
	SlideIDs []uuid.UUID
}

// RepublishRow clears every snooze stored in a row. Running it on a row
// with nothing snoozed returns a zero count.
func (e *Engine) RepublishRow(ctx context.Context, rowID uuid.UUID) (RepublishResult, error) {
	ids, err := e.store.ClearTemporaryUnpublish(ctx, rowID)
	if err != nil {
		return RepublishResult{}, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	e.metrics.RecordRepublish(len(ids))

	log.Info().Str("row_id", rowID.String()).Int("count", len(ids)).Msg("[engine] row republished")

	if len(ids) > 0 {
		e.notify(ctx, RowEvent{RowID: rowID, Action: ActionRepublished, SlideIDs: ids, At: e.clock.Now()})
	}
	return RepublishResult{Count: len(ids), SlideIDs: ids}, nil
}

// ReorderSlides gives each listed slide of a row display_order = its index.
// Slides left out keep their order, which may then collide with a new one.
func (e *Engine) ReorderSlides(ctx context.Context, rowID uuid.UUID, order []uuid.UUID) error {
	if len(order) == 0 {
		return model.ErrEmptyOrder
	}
	if _, err := e.store.FetchRow(ctx, rowID); err != nil {
		return err
	}

	c := model.SlidesOf(rowID)
	if err := e.store.PersistOrder(ctx, c, order); err != nil {
		return fmt.Errorf("reorder %s: %w", c, err)
	}
	e.metrics.RecordReorder("slides")

	log.Info().Str("row_id", rowID.String()).Int("count", len(order)).Msg("[engine] slides reordered")

	e.notify(ctx, RowEvent{RowID: rowID, Action: ActionReordered, SlideIDs: order, At: e.clock.Now()})
	return nil
}

// ReorderRows gives each listed row display_order = its index.
func (e *Engine) ReorderRows(ctx context.Context, order []uuid.UUID) error {
	if len(order) == 0 {
		return model.ErrEmptyOrder
	}

	c := model.RowsCollection()
	if err := e.store.PersistOrder(ctx, c, order); err != nil {
		return fmt.Errorf("reorder %s: %w", c, err)
	}
	e.metrics.RecordReorder("rows")

	log.Info().Int("count", len(order)).Msg("[engine] rows reordered")

	e.notify(ctx, RowEvent{Action: ActionRowsReordered, At: e.clock.Now()})
	return nil
}

func (e *Engine) report(diags []model.Diagnostic, rowID uuid.UUID) {
	for _, d := range diags {
		e.metrics.RecordDiagnostic(d.Kind)
		log.Warn().Err(d.Err).
			Str("row_id", rowID.String()).
			Str("subject_id", d.SubjectID.String()).
			Str("kind", string(d.Kind)).
			Msg("[engine] degraded on bad input")
	}
}

func (e *Engine) notify(ctx context.Context, ev RowEvent) {
	if err := e.notifier.RowChanged(ctx, ev); err != nil {
		log.Warn().Err(err).Str("row_id", ev.RowID.String()).Str("action", string(ev.Action)).
			Msg("[engine] failed to notify row change")
	}
}

type nopNotifier struct{}

func (nopNotifier) RowChanged(context.Context, RowEvent) error { return nil }

type nopMetrics struct{}

func (nopMetrics) RecordMaterialized(bool)               {}
func (nopMetrics) RecordDiagnostic(model.DiagnosticKind) {}
func (nopMetrics) RecordSnooze()                         {}
func (nopMetrics) RecordRepublish(int)                   {}
func (nopMetrics) RecordReorder(string)                  {}
