package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine/mocks"
	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

func setup(t *testing.T) (*miniredis.Miniredis, *mocks.MockStore, *CachedStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	inner := mocks.NewMockStore(gomock.NewController(t))
	return mr, inner, NewCachedStore(inner, rdb, 30*time.Second)
}

func TestCachedStore_FetchSlidesReadsThrough(t *testing.T) {
	ctx := context.Background()
	_, inner, store := setup(t)

	rowID := uuid.New()
	until := time.Date(2025, 10, 16, 1, 0, 0, 0, time.UTC)
	start := "22:00"
	slides := []model.Slide{{
		ID:                      uuid.New(),
		RowID:                   rowID,
		Kind:                    model.KindAudio,
		Title:                   "intro",
		InsertSeq:               7,
		IsPublished:             true,
		TemporaryUnpublishUntil: &until,
		Schedule:                &model.ScheduleWindow{DaysOfWeek: []int{1, 2}, TimeStart: &start},
	}}

	inner.EXPECT().FetchSlides(ctx, rowID).Return(slides, nil).Times(1)

	first, err := store.FetchSlides(ctx, rowID)
	require.NoError(t, err)
	second, err := store.FetchSlides(ctx, rowID)
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, int64(7), second[0].InsertSeq)
	assert.Equal(t, model.KindAudio, second[0].Kind)
	assert.True(t, until.Equal(*second[0].TemporaryUnpublishUntil))
	assert.Equal(t, []int{1, 2}, second[0].Schedule.DaysOfWeek)
	assert.Equal(t, "22:00", *second[0].Schedule.TimeStart)
}

func TestCachedStore_SnapshotExpires(t *testing.T) {
	ctx := context.Background()
	mr, inner, store := setup(t)
	row := model.Row{ID: uuid.New(), Name: "lobby"}

	inner.EXPECT().FetchRow(ctx, row.ID).Return(row, nil).Times(2)

	_, err := store.FetchRow(ctx, row.ID)
	require.NoError(t, err)
	mr.FastForward(31 * time.Second)
	got, err := store.FetchRow(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "lobby", got.Name)
}

func TestCachedStore_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	mr, inner, store := setup(t)
	id := uuid.New()

	inner.EXPECT().FetchRow(ctx, id).Return(model.Row{}, model.ErrNotFound).Times(2)

	_, err := store.FetchRow(ctx, id)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = store.FetchRow(ctx, id)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.False(t, mr.Exists(rowKey(id)))
}

func TestCachedStore_PersistOrderInvalidatesSlides(t *testing.T) {
	ctx := context.Background()
	mr, inner, store := setup(t)
	rowID := uuid.New()
	order := []uuid.UUID{uuid.New()}

	inner.EXPECT().FetchSlides(ctx, rowID).Return([]model.Slide{}, nil).Times(2)
	inner.EXPECT().PersistOrder(ctx, model.SlidesOf(rowID), order).Return(nil)

	_, err := store.FetchSlides(ctx, rowID)
	require.NoError(t, err)
	require.True(t, mr.Exists(slidesKey(rowID)))

	require.NoError(t, store.PersistOrder(ctx, model.SlidesOf(rowID), order))
	assert.False(t, mr.Exists(slidesKey(rowID)))

	_, err = store.FetchSlides(ctx, rowID)
	require.NoError(t, err)
}

func TestCachedStore_PersistRowOrderInvalidatesRows(t *testing.T) {
	ctx := context.Background()
	mr, inner, store := setup(t)
	a, b := uuid.New(), uuid.New()
	require.NoError(t, mr.Set(rowsKey, "[]"))
	require.NoError(t, mr.Set(rowKey(a), "{}"))

	inner.EXPECT().PersistOrder(ctx, model.RowsCollection(), []uuid.UUID{a, b}).Return(nil)

	require.NoError(t, store.PersistOrder(ctx, model.RowsCollection(), []uuid.UUID{a, b}))
	assert.False(t, mr.Exists(rowsKey))
	assert.False(t, mr.Exists(rowKey(a)))
}

func TestCachedStore_SnoozeInvalidatesOwningRow(t *testing.T) {
	ctx := context.Background()
	mr, inner, store := setup(t)
	rowID, slideID := uuid.New(), uuid.New()
	until := time.Now().Add(time.Hour)
	require.NoError(t, mr.Set(slidesKey(rowID), "[]"))

	inner.EXPECT().SetTemporaryUnpublish(ctx, slideID, until).Return(model.Slide{ID: slideID, RowID: rowID}, nil)

	_, err := store.SetTemporaryUnpublish(ctx, slideID, until)
	require.NoError(t, err)
	assert.False(t, mr.Exists(slidesKey(rowID)))
}

func TestCachedStore_RepublishKeepsSnapshotWhenNothingChanged(t *testing.T) {
	ctx := context.Background()
	mr, inner, store := setup(t)
	rowID := uuid.New()
	require.NoError(t, mr.Set(slidesKey(rowID), "[]"))

	inner.EXPECT().ClearTemporaryUnpublish(ctx, rowID).Return([]uuid.UUID{}, nil)

	ids, err := store.ClearTemporaryUnpublish(ctx, rowID)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.True(t, mr.Exists(slidesKey(rowID)))
}

func TestCachedStore_RedisDownFallsBack(t *testing.T) {
	ctx := context.Background()
	mr, inner, store := setup(t)
	rowID := uuid.New()
	mr.Close()

	inner.EXPECT().FetchSlides(ctx, rowID).Return([]model.Slide{{ID: uuid.New()}}, nil)

	got, err := store.FetchSlides(ctx, rowID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
