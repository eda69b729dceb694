package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a fail-safe JSON cache over Redis. Every Redis failure is treated
// as a cache miss so the database stays authoritative; a nil Client is a
// valid no-op cache.
type Client struct {
	rdb *redis.Client
}

// New connects a cache client to the given Redis instance.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// GetJSON loads the value under key into dest. It returns false on a miss,
// on a decode failure, or when Redis is unreachable.
func (c *Client) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors are both misses.
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// SetJSON stores value under key for ttl. Encoding and Redis errors are
// swallowed; the entry is simply not cached.
func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, data, ttl).Err()
}

// Invalidate drops a key, ignoring Redis errors.
func (c *Client) Invalidate(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, key).Err()
}
