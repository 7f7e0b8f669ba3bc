// Package availability caches per-date free-slot lists in Redis.
// Entries are short-lived snapshots; a booking invalidates its date so the
// next lookup recomputes from the database.
package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/types"
)

const keyPrefix = "availability:"

// Cache stores free-slot lists keyed by date.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a cache with the given entry TTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetSlots returns the cached slot list for date. The second return value
// is false on a cache miss.
func (c *Cache) GetSlots(ctx context.Context, date time.Time) ([]types.TimeString, bool, error) {
	data, err := c.client.Get(ctx, key(date)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("availability cache: get: %w", err)
	}

	var slots []types.TimeString
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false, fmt.Errorf("availability cache: unmarshal: %w", err)
	}

	return slots, true, nil
}

// SetSlots stores the slot list for date.
func (c *Cache) SetSlots(ctx context.Context, date time.Time, slots []types.TimeString) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("availability cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, key(date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("availability cache: set: %w", err)
	}

	return nil
}

// InvalidateDate drops the cached entry for date.
func (c *Cache) InvalidateDate(ctx context.Context, date time.Time) error {
	if err := c.client.Del(ctx, key(date)).Err(); err != nil {
		return fmt.Errorf("availability cache: del: %w", err)
	}
	return nil
}

func key(date time.Time) string {
	return keyPrefix + date.Format(domain.DateFormat)
}
