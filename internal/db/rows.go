package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

// @ ROWS
func (s *PgStore) CreateRow(ctx context.Context, r model.Row) (model.Row, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r, err := model.NewRow(r.ID, r.Name, r.DisplayOrder, r.RotationEnabled, r.RotationCount, r.RotationInterval)
	if err != nil {
		return model.Row{}, err
	}

	var out model.Row
	q := `
	INSERT INTO content_rows
	(id, name, display_order, rotation_enabled, rotation_count, rotation_interval, created_at, updated_at)
	VALUES
	($1, $2,   $3,            $4,               $5,             $6,                now(),      now())
	RETURNING` + rowColumns + `;`

	if err := s.db.GetContext(ctx, &out, q,
		r.ID, r.Name, r.DisplayOrder, r.RotationEnabled, r.RotationCount, r.RotationInterval,
	); err != nil {
		log.Error().Err(err).Msg("[db] CreateRow: failed to insert row")
		return model.Row{}, err
	}
	return out, nil
}

func (s *PgStore) FetchRow(ctx context.Context, id uuid.UUID) (model.Row, error) {
	var r model.Row
	q := `SELECT` + rowColumns + ` FROM content_rows WHERE id = $1;`

	err := s.db.GetContext(ctx, &r, q, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Row{}, fmt.Errorf("row %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		log.Error().Err(err).Str("row_id", id.String()).Msg("[db] FetchRow: failed to get row")
		return model.Row{}, err
	}
	return r, nil
}

func (s *PgStore) FetchRows(ctx context.Context) ([]model.Row, error) {
	out := []model.Row{}
	q := `SELECT` + rowColumns + ` FROM content_rows ORDER BY display_order, insert_seq;`

	if err := s.db.SelectContext(ctx, &out, q); err != nil {
		log.Error().Err(err).Msg("[db] FetchRows: failed to select rows")
		return nil, err
	}
	return out, nil
}
