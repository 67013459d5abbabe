package server

import (
	"context"
	"fmt"

	"kanban/internal/cache"
	"kanban/internal/config"
	"kanban/internal/model"
	"kanban/internal/persistence"
	"kanban/internal/repository"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Backends are the storage connections selected by STORAGE_BACKEND. DB is nil
// unless the postgres backend is used; Redis is nil unless a redis store or cache
// is configured.
type Backends struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Snapshots persistence.SnapshotStore
}

func OpenBackends(ctx context.Context, cfg *config.Config) (*Backends, error) {
	b := &Backends{}

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to DB: %w", err)
		}
		log.Info("✅ Connected to database")
		return PostgresBackends(ctx, cfg, db)
	case config.BackendRedis:
		client, err := openRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		b.Redis = client
		b.Snapshots = cache.NewSnapshotCache(client)
	case config.BackendMemory:
		log.Warn("⚠️  Using in-memory storage, the board is lost on restart")
		b.Snapshots = persistence.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	return b, nil
}

// PostgresBackends wraps db in the configured snapshot cache and migrates it.
// db is closed when any step fails.
func PostgresBackends(ctx context.Context, cfg *config.Config, db *gorm.DB) (*Backends, error) {
	b := &Backends{DB: db, Snapshots: repository.NewSnapshotRepository(db)}

	if cfg.CacheTTL > 0 {
		client, err := openRedis(ctx, cfg)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.Redis = client
		b.Snapshots = cache.NewReadThrough(client, b.Snapshots, cfg.CacheTTL)
		log.WithField("ttl", cfg.CacheTTL).Info("✅ Redis snapshot cache enabled")
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.BoardSnapshot{}, &model.Todo{}); err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	return b, nil
}

func openRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	log.WithField("addr", cfg.RedisAddr).Info("✅ Connected to redis")
	return client, nil
}

func (b *Backends) Close() {
	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			log.WithError(err).Warn("failed to close redis client")
		}
	}
	if b.DB != nil {
		if sqlDB, err := b.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
