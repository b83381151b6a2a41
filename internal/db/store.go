// Package db is the PostgreSQL record store for rows and slides.
package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

type PgStore struct {
	db *sqlx.DB
}

// compile-time check that PgStore implements engine.Store
var _ engine.Store = (*PgStore)(nil)

func NewStore(conn *sqlx.DB) *PgStore {
	return &PgStore{db: conn}
}

const rowColumns = `
	id, name, display_order, insert_seq,
	rotation_enabled, rotation_count, rotation_interval,
	created_at, updated_at`

const slideColumns = `
	id, row_id, kind, title, display_order, insert_seq,
	is_published, temporary_unpublish_until,
	schedule_days_of_week, schedule_time_start, schedule_time_end,
	random_eligible, created_at, updated_at`

// slideRecord is the flat table shape of a slide.
type slideRecord struct {
	ID                      uuid.UUID     `db:"id"`
	RowID                   uuid.UUID     `db:"row_id"`
	Kind                    string        `db:"kind"`
	Title                   string        `db:"title"`
	DisplayOrder            int           `db:"display_order"`
	InsertSeq               int64         `db:"insert_seq"`
	IsPublished             bool          `db:"is_published"`
	TemporaryUnpublishUntil *time.Time    `db:"temporary_unpublish_until"`
	ScheduleDaysOfWeek      pq.Int64Array `db:"schedule_days_of_week"`
	ScheduleTimeStart       *string       `db:"schedule_time_start"`
	ScheduleTimeEnd         *string       `db:"schedule_time_end"`
	RandomEligible          bool          `db:"random_eligible"`
	CreatedAt               time.Time     `db:"created_at"`
	UpdatedAt               time.Time     `db:"updated_at"`
}

func (r slideRecord) toModel() model.Slide {
	s := model.Slide{
		ID:                      r.ID,
		RowID:                   r.RowID,
		Kind:                    model.Kind(r.Kind),
		Title:                   r.Title,
		DisplayOrder:            r.DisplayOrder,
		InsertSeq:               r.InsertSeq,
		IsPublished:             r.IsPublished,
		TemporaryUnpublishUntil: r.TemporaryUnpublishUntil,
		RandomEligible:          r.RandomEligible,
		CreatedAt:               r.CreatedAt,
		UpdatedAt:               r.UpdatedAt,
	}

	w := model.ScheduleWindow{
		TimeStart: r.ScheduleTimeStart,
		TimeEnd:   r.ScheduleTimeEnd,
	}
	for _, d := range r.ScheduleDaysOfWeek {
		w.DaysOfWeek = append(w.DaysOfWeek, int(d))
	}
	if !w.Empty() {
		s.Schedule = &w
	}
	return s
}

func fromModel(s model.Slide) slideRecord {
	r := slideRecord{
		ID:                      s.ID,
		RowID:                   s.RowID,
		Kind:                    string(s.Kind),
		Title:                   s.Title,
		DisplayOrder:            s.DisplayOrder,
		IsPublished:             s.IsPublished,
		TemporaryUnpublishUntil: s.TemporaryUnpublishUntil,
		RandomEligible:          s.RandomEligible,
	}
	if r.Kind == "" {
		r.Kind = string(model.KindSlide)
	}
	if s.Schedule != nil {
		r.ScheduleTimeStart = s.Schedule.TimeStart
		r.ScheduleTimeEnd = s.Schedule.TimeEnd
		for _, d := range s.Schedule.DaysOfWeek {
			r.ScheduleDaysOfWeek = append(r.ScheduleDaysOfWeek, int64(d))
		}
	}
	return r
}
