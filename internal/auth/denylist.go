package auth

import (
	"context"
	"time"

	"github.com/mogith007/skillswap/pkg/utils"
	"github.com/redis/go-redis/v9"
)

// Denylist records revoked tokens until they would have expired anyway.
type Denylist interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

const denylistPrefix = "skillswap:revoked:"

// redisKV is the subset of the go-redis client the denylist needs.
type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisDenylist stores token fingerprints in Redis with a TTL matching the token.
type RedisDenylist struct {
	kv  redisKV
	now func() time.Time
}

func NewRedisDenylist(client redis.UniversalClient) *RedisDenylist {
	return &RedisDenylist{kv: client, now: time.Now}
}

func key(token string) string {
	return denylistPrefix + utils.Fingerprint(token)
}

func (d *RedisDenylist) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	return d.kv.Set(ctx, key(token), 1, ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.kv.Exists(ctx, key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NopDenylist never revokes anything; logout is then client-side only.
type NopDenylist struct{}

func (NopDenylist) Revoke(context.Context, string, time.Time) error { return nil }

func (NopDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }
