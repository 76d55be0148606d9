// Package cache implementa analytics.ResultCache sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/analytics"
)

// scanBatch claves pedidas por iteración de SCAN.
const scanBatch = 100

// RedisCache guarda vistas del dashboard serializadas en JSON.
type RedisCache struct {
	rdb *redis.Client
}

var _ analytics.ResultCache = (*RedisCache)(nil)

// NewRedisCache construye la caché con un cliente ya configurado.
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// Connect abre el cliente y verifica la conexión con PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: ping redis %s: %w", addr, err)
	}
	return rdb, nil
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache.Get: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// entrada corrupta: se trata como fallo de caché
		_ = c.rdb.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	return nil
}

// InvalidateOrganization borra con SCAN + DEL todas las claves de la organización.
func (c *RedisCache) InvalidateOrganization(ctx context.Context, organizationID string) error {
	pattern := OrganizationPattern(organizationID)
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("cache.InvalidateOrganization: scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache.InvalidateOrganization: del: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// OrganizationPattern patrón MATCH de las claves de una organización.
func OrganizationPattern(organizationID string) string {
	return analytics.CacheKey(organizationID, "*")
}
