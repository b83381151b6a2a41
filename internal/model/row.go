package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RotationInterval string

const (
	RotationHourly RotationInterval = "hourly"
	RotationDaily  RotationInterval = "daily"
	RotationWeekly RotationInterval = "weekly"
)

// Valid reports whether i is one of the known seed windows.
func (i RotationInterval) Valid() bool {
	switch i {
	case RotationHourly, RotationDaily, RotationWeekly:
		return true
	}
	return false
}

// Row is an ordered collection of slides sharing display and rotation settings.
type Row struct {
	ID               uuid.UUID         `db:"id"                json:"id"`
	Name             string            `db:"name"              json:"name"`
	DisplayOrder     int               `db:"display_order"     json:"display_order"`
	InsertSeq        int64             `db:"insert_seq"        json:"insert_seq"`
	RotationEnabled  bool              `db:"rotation_enabled"  json:"rotation_enabled"`
	RotationCount    *int              `db:"rotation_count"    json:"rotation_count,omitempty"`
	RotationInterval *RotationInterval `db:"rotation_interval" json:"rotation_interval,omitempty"`
	CreatedAt        time.Time         `db:"created_at"        json:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"        json:"updated_at"`
}

// RotationPlan is the resolved rotation setting of a row.
type RotationPlan struct {
	Count    int
	Interval RotationInterval
}

// NewRow builds a row and rejects rotation settings that cannot be evaluated,
// including intervals outside hourly, daily and weekly.
func NewRow(id uuid.UUID, name string, displayOrder int, rotationEnabled bool, count *int, interval *RotationInterval) (Row, error) {
	r := Row{
		ID:               id,
		Name:             name,
		DisplayOrder:     displayOrder,
		RotationEnabled:  rotationEnabled,
		RotationCount:    count,
		RotationInterval: interval,
	}
	if !rotationEnabled {
		return r, nil
	}
	plan, ok, err := r.Rotation()
	if !ok {
		return Row{}, err
	}
	if !plan.Interval.Valid() {
		return Row{}, fmt.Errorf("%w: unknown rotation interval %q", ErrInvalidRotation, plan.Interval)
	}
	return r, nil
}

// Rotation resolves the row's rotation plan. ok is false when rotation is off
// or misconfigured; err explains a misconfiguration and is nil when rotation is
// simply disabled.
func (r Row) Rotation() (RotationPlan, bool, error) {
	if !r.RotationEnabled {
		return RotationPlan{}, false, nil
	}
	if r.RotationCount == nil {
		return RotationPlan{}, false, fmt.Errorf("%w: rotation count is missing", ErrInvalidRotation)
	}
	if *r.RotationCount < 1 {
		return RotationPlan{}, false, fmt.Errorf("%w: rotation count %d is below 1", ErrInvalidRotation, *r.RotationCount)
	}
	if r.RotationInterval == nil {
		return RotationPlan{}, false, fmt.Errorf("%w: rotation interval is missing", ErrInvalidRotation)
	}
	// Unknown intervals still rotate; the seed clock buckets them daily.
	return RotationPlan{Count: *r.RotationCount, Interval: *r.RotationInterval}, true, nil
}
