package cache

import (
	"context"
	"errors"
	"time"

	"kanban/internal/persistence"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// SnapshotCache keeps encoded boards in Redis. Without a base store Redis is the
// only copy and entries never expire. With a base store it becomes a
// read-through, write-through cache in front of it.
type SnapshotCache struct {
	redis *redis.Client
	base  persistence.SnapshotStore
	ttl   time.Duration
}

var _ persistence.SnapshotStore = (*SnapshotCache)(nil)

// NewSnapshotCache uses client as the primary snapshot store.
func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	if client == nil {
		panic("cache.NewSnapshotCache: redis client is nil")
	}
	return &SnapshotCache{redis: client}
}

// NewReadThrough caches the snapshots of base for ttl.
func NewReadThrough(client *redis.Client, base persistence.SnapshotStore, ttl time.Duration) *SnapshotCache {
	if base == nil {
		panic("cache.NewReadThrough: base store is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &SnapshotCache{redis: client, base: base, ttl: ttl}
}

func (c *SnapshotCache) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		return data, nil
	}
	if c.base == nil {
		if errors.Is(err, redis.Nil) {
			return nil, persistence.ErrNotFound
		}
		return nil, err
	}
	if !errors.Is(err, redis.Nil) {
		log.WithError(err).WithField("key", key).Warn("redis read failed, falling back to base store")
	}

	data, err = c.base.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, data)
	return data, nil
}

func (c *SnapshotCache) Save(ctx context.Context, key string, data []byte) error {
	if c.base == nil {
		return c.redis.Set(ctx, key, data, 0).Err()
	}
	if err := c.base.Save(ctx, key, data); err != nil {
		_ = c.redis.Del(ctx, key).Err()
		return err
	}
	c.store(ctx, key, data)
	return nil
}

func (c *SnapshotCache) store(ctx context.Context, key string, data []byte) {
	if c.ttl == 0 {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.WithError(err).WithField("key", key).Warn("failed to cache board snapshot")
	}
}
