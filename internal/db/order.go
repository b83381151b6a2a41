package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

// PersistOrder writes display_order = index for every id in one
// transaction; on any failure nothing is written. Ids that are not members
// of the collection are skipped, and members left out keep their order.
func (s *PgStore) PersistOrder(ctx context.Context, c model.Collection, order []uuid.UUID) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Str("collection", c.String()).Msg("[db] PersistOrder: rollback failed")
			}
		}
	}()

	for idx, id := range order {
		if c.IsRows() {
			_, err = tx.ExecContext(ctx, `
			UPDATE content_rows
			   SET display_order = $1, updated_at = now()
			 WHERE id = $2;`, idx, id)
		} else {
			_, err = tx.ExecContext(ctx, `
			UPDATE slides
			   SET display_order = $1, updated_at = now()
			 WHERE id = $2
			   AND row_id = $3;`, idx, id, c.RowID)
		}
		if err != nil {
			log.Error().Err(err).Str("collection", c.String()).Int("index", idx).
				Msg("[db] PersistOrder: update failed")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Str("collection", c.String()).Msg("[db] PersistOrder: commit failed")
		return err
	}
	return nil
}
