package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"show-scheduler/internal/data/entity"
	"show-scheduler/pkg/utils"
)

// NewRedisClient builds a redis client from config and verifies it with a
// short ping. Returns nil on failure; callers degrade gracefully by
// skipping the cached steps of the owner resolution chain.
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Host + ":" + config.Port,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// OwnerCache keeps theatre-owner records under two key families: by owner
// id and by the user account the owner signed in with. Both feed the
// owner resolution fallback chain.
type OwnerCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewOwnerCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *OwnerCache {
	return &OwnerCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "owner")),
	}
}

func ownerKey(id uuid.UUID) string     { return "owner:" + id.String() }
func ownerUserKey(id uuid.UUID) string { return "owner:user:" + id.String() }

func (c *OwnerCache) get(ctx context.Context, key string) (*entity.TheatreOwner, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var owner entity.TheatreOwner
	if err := json.Unmarshal(raw, &owner); err != nil {
		c.log.Warn("Corrupt cache entry dropped", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return nil, false
	}
	return &owner, true
}

func (c *OwnerCache) set(ctx context.Context, key string, owner *entity.TheatreOwner) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(owner)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// GetOwner returns the cached owner record, if any.
func (c *OwnerCache) GetOwner(ctx context.Context, ownerID uuid.UUID) (*entity.TheatreOwner, bool) {
	return c.get(ctx, ownerKey(ownerID))
}

// GetOwnerByUser returns the cached owner record keyed by user account.
func (c *OwnerCache) GetOwnerByUser(ctx context.Context, userID uuid.UUID) (*entity.TheatreOwner, bool) {
	return c.get(ctx, ownerUserKey(userID))
}

// SetOwner stores the record under both key families so either lookup
// path can serve it later.
func (c *OwnerCache) SetOwner(ctx context.Context, owner *entity.TheatreOwner) {
	c.set(ctx, ownerKey(owner.ID), owner)
	if owner.UserID != uuid.Nil {
		c.set(ctx, ownerUserKey(owner.UserID), owner)
	}
}
