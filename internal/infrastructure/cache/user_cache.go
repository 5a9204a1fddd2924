package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"usermgmt-service/internal/domain/user"

	"github.com/redis/go-redis/v9"
)

// UserCache keeps serialized user views under user:<id>.
type UserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewUserCache(rdb *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{rdb: rdb, ttl: ttl}
}

func userKey(id uint64) string { return "user:" + strconv.FormatUint(id, 10) }

// Get reports ok=false on a miss; a decode failure is treated as a miss too.
func (c *UserCache) Get(ctx context.Context, id uint64) (*user.View, bool, error) {
	raw, err := c.rdb.Get(ctx, userKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var v user.View
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, nil
	}
	return &v, true, nil
}

func (c *UserCache) Set(ctx context.Context, v *user.View) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, userKey(v.ID), b, c.ttl).Err()
}

func (c *UserCache) Invalidate(ctx context.Context, ids ...uint64) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, userKey(id))
	}
	return c.rdb.Del(ctx, keys...).Err()
}
