package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

// @ SLIDES
func (s *PgStore) CreateSlide(ctx context.Context, sl model.Slide) (model.Slide, error) {
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	rec := fromModel(sl)

	var out slideRecord
	q := `
	INSERT INTO slides
	(id, row_id, kind, title, display_order, is_published, temporary_unpublish_until,
	 schedule_days_of_week, schedule_time_start, schedule_time_end, random_eligible,
	 created_at, updated_at)
	VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	RETURNING` + slideColumns + `;`

	if err := s.db.GetContext(ctx, &out, q,
		rec.ID, rec.RowID, rec.Kind, rec.Title, rec.DisplayOrder, rec.IsPublished, rec.TemporaryUnpublishUntil,
		rec.ScheduleDaysOfWeek, rec.ScheduleTimeStart, rec.ScheduleTimeEnd, rec.RandomEligible,
	); err != nil {
		log.Error().Err(err).Str("row_id", sl.RowID.String()).Msg("[db] CreateSlide: failed to insert slide")
		return model.Slide{}, err
	}
	return out.toModel(), nil
}

// FetchSlides returns a row's slides in display order, ties in insertion
// order.
func (s *PgStore) FetchSlides(ctx context.Context, rowID uuid.UUID) ([]model.Slide, error) {
	if err := s.requireRow(ctx, rowID); err != nil {
		return nil, err
	}

	var recs []slideRecord
	q := `SELECT` + slideColumns + `
	FROM slides
	WHERE row_id = $1
	ORDER BY display_order, insert_seq;`

	if err := s.db.SelectContext(ctx, &recs, q, rowID); err != nil {
		log.Error().Err(err).Str("row_id", rowID.String()).Msg("[db] FetchSlides: failed to select slides")
		return nil, err
	}

	out := make([]model.Slide, len(recs))
	for i, r := range recs {
		out[i] = r.toModel()
	}
	return out, nil
}

func (s *PgStore) SetTemporaryUnpublish(ctx context.Context, slideID uuid.UUID, until time.Time) (model.Slide, error) {
	var rec slideRecord
	q := `
	UPDATE slides
	SET
	temporary_unpublish_until = $2,
	updated_at                = now()
	WHERE id = $1
	RETURNING` + slideColumns + `;`

	err := s.db.GetContext(ctx, &rec, q, slideID, until)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Slide{}, fmt.Errorf("slide %s: %w", slideID, model.ErrNotFound)
	}
	if err != nil {
		log.Error().Err(err).Str("slide_id", slideID.String()).Msg("[db] SetTemporaryUnpublish: update failed")
		return model.Slide{}, err
	}
	return rec.toModel(), nil
}

func (s *PgStore) ClearTemporaryUnpublish(ctx context.Context, rowID uuid.UUID) ([]uuid.UUID, error) {
	if err := s.requireRow(ctx, rowID); err != nil {
		return nil, err
	}

	ids := []uuid.UUID{}
	const q = `
	UPDATE slides
	SET
	temporary_unpublish_until = NULL,
	updated_at                = now()
	WHERE row_id = $1
	  AND temporary_unpublish_until IS NOT NULL
	RETURNING id;`

	if err := s.db.SelectContext(ctx, &ids, q, rowID); err != nil {
		log.Error().Err(err).Str("row_id", rowID.String()).Msg("[db] ClearTemporaryUnpublish: update failed")
		return nil, err
	}
	return ids, nil
}

func (s *PgStore) requireRow(ctx context.Context, rowID uuid.UUID) error {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM content_rows WHERE id = $1);`, rowID); err != nil {
		log.Error().Err(err).Str("row_id", rowID.String()).Msg("[db] row lookup failed")
		return err
	}
	if !exists {
		return fmt.Errorf("row %s: %w", rowID, model.ErrNotFound)
	}
	return nil
}
