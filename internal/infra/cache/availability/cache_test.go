package availability

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th-alves/nails-booking-service/pkg/types"
)

var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCache(client, time.Minute), mr
}

func TestGetSlots_MissThenHit(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, hit, err := cache.GetSlots(ctx, testDate)
	require.NoError(t, err)
	assert.False(t, hit)

	slots := []types.TimeString{"08:00", "10:00", "15:00"}
	require.NoError(t, cache.SetSlots(ctx, testDate, slots))

	got, hit, err := cache.GetSlots(ctx, testDate)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, slots, got)
}

func TestSetSlots_EmptyListIsAHit(t *testing.T) {
	// A fully booked date caches as an empty list, not as a miss.
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetSlots(ctx, testDate, []types.TimeString{}))

	got, hit, err := cache.GetSlots(ctx, testDate)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, got)
}

func TestInvalidateDate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetSlots(ctx, testDate, []types.TimeString{"09:00"}))
	require.NoError(t, cache.InvalidateDate(ctx, testDate))

	_, hit, err := cache.GetSlots(ctx, testDate)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestInvalidateDate_OtherDatesSurvive(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	otherDate := testDate.AddDate(0, 0, 1)

	require.NoError(t, cache.SetSlots(ctx, testDate, []types.TimeString{"09:00"}))
	require.NoError(t, cache.SetSlots(ctx, otherDate, []types.TimeString{"10:00"}))
	require.NoError(t, cache.InvalidateDate(ctx, testDate))

	got, hit, err := cache.GetSlots(ctx, otherDate)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []types.TimeString{"10:00"}, got)
}

func TestGetSlots_ExpiredEntryIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetSlots(ctx, testDate, []types.TimeString{"09:00"}))

	mr.FastForward(2 * time.Minute)

	_, hit, err := cache.GetSlots(ctx, testDate)
	require.NoError(t, err)
	assert.False(t, hit)
}
