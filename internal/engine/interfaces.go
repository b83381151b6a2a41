package engine

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

// Store is the row and slide record store. Lookups of a missing row or
// slide return an error wrapping model.ErrNotFound; a row with no slides
// returns an empty slice.
type Store interface {
	FetchRow(ctx context.Context, id uuid.UUID) (model.Row, error)
	FetchRows(ctx context.Context) ([]model.Row, error)
	FetchSlides(ctx context.Context, rowID uuid.UUID) ([]model.Slide, error)

	// SetTemporaryUnpublish stores until on the slide and returns the
	// updated record.
	SetTemporaryUnpublish(ctx context.Context, slideID uuid.UUID, until time.Time) (model.Slide, error)
	// ClearTemporaryUnpublish clears every stored expiry in the row and
	// returns the ids it touched.
	ClearTemporaryUnpublish(ctx context.Context, rowID uuid.UUID) ([]uuid.UUID, error)
	// PersistOrder sets display_order = index for every listed id in one
	// transaction. Members not listed keep their order.
	PersistOrder(ctx context.Context, c model.Collection, order []uuid.UUID) error
}

// Notifier tells screens and subscribers that a row changed.
type Notifier interface {
	RowChanged(ctx context.Context, ev RowEvent) error
}

// Metrics records engine activity.
type Metrics interface {
	RecordMaterialized(rotated bool)
	RecordDiagnostic(kind model.DiagnosticKind)
	RecordSnooze()
	RecordRepublish(count int)
	RecordReorder(collection string)
}

// Clock supplies the current instant in the display time zone.
type Clock interface {
	Now() time.Time
}
