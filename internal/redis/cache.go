package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

// CachedStore keeps row and slide snapshots in redis in front of another
// store. Writes go straight through and drop the snapshots they affect.
// Redis failures fall back to the inner store.
type CachedStore struct {
	inner engine.Store
	rdb   *redis.Client
	ttl   time.Duration
}

var _ engine.Store = (*CachedStore)(nil)

func NewCachedStore(inner engine.Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, rdb: rdb, ttl: ttl}
}

const rowsKey = "rows"

func rowKey(id uuid.UUID) string    { return fmt.Sprintf("row:%s", id) }
func slidesKey(id uuid.UUID) string { return fmt.Sprintf("row:%s:slides", id) }

func (c *CachedStore) FetchRow(ctx context.Context, id uuid.UUID) (model.Row, error) {
	return readThrough(ctx, c, rowKey(id), func() (model.Row, error) {
		return c.inner.FetchRow(ctx, id)
	})
}

func (c *CachedStore) FetchRows(ctx context.Context) ([]model.Row, error) {
	return readThrough(ctx, c, rowsKey, func() ([]model.Row, error) {
		return c.inner.FetchRows(ctx)
	})
}

func (c *CachedStore) FetchSlides(ctx context.Context, rowID uuid.UUID) ([]model.Slide, error) {
	return readThrough(ctx, c, slidesKey(rowID), func() ([]model.Slide, error) {
		return c.inner.FetchSlides(ctx, rowID)
	})
}

func (c *CachedStore) SetTemporaryUnpublish(ctx context.Context, slideID uuid.UUID, until time.Time) (model.Slide, error) {
	s, err := c.inner.SetTemporaryUnpublish(ctx, slideID, until)
	if err != nil {
		return s, err
	}
	c.invalidate(ctx, slidesKey(s.RowID))
	return s, nil
}

func (c *CachedStore) ClearTemporaryUnpublish(ctx context.Context, rowID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := c.inner.ClearTemporaryUnpublish(ctx, rowID)
	if err != nil {
		return ids, err
	}
	if len(ids) > 0 {
		c.invalidate(ctx, slidesKey(rowID))
	}
	return ids, nil
}

func (c *CachedStore) PersistOrder(ctx context.Context, coll model.Collection, order []uuid.UUID) error {
	if err := c.inner.PersistOrder(ctx, coll, order); err != nil {
		return err
	}
	if coll.IsRows() {
		keys := []string{rowsKey}
		for _, id := range order {
			keys = append(keys, rowKey(id))
		}
		c.invalidate(ctx, keys...)
	} else {
		c.invalidate(ctx, slidesKey(coll.RowID))
	}
	return nil
}

func (c *CachedStore) invalidate(ctx context.Context, keys ...string) {
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("[cache] failed to invalidate snapshot")
		return
	}
	log.Debug().Strs("keys", keys).Msg("[cache] invalidated snapshot")
}

func readThrough[T any](ctx context.Context, c *CachedStore, key string, load func() (T, error)) (T, error) {
	var v T
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jerr := json.Unmarshal(raw, &v); jerr == nil {
			return v, nil
		}
		log.Warn().Str("key", key).Msg("[cache] dropping undecodable snapshot")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("key", key).Msg("[cache] read failed, using store")
	}

	v, err = load()
	if err != nil {
		return v, err
	}

	body, err := json.Marshal(v)
	if err != nil {
		return v, nil
	}
	if err := c.rdb.Set(ctx, key, body, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[cache] failed to store snapshot")
	}
	return v, nil
}
