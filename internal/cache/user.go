package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/userhub/userhub/internal/model"
)

// Cache key prefix and TTL.
const (
	userKeyPrefix = "user:"

	// DefaultUserTTL is the TTL for cached user views.
	DefaultUserTTL = 15 * time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

func userKey(id int64) string {
	return userKeyPrefix + strconv.FormatInt(id, 10)
}

// GetUser retrieves a cached user view by id.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetUser(ctx context.Context, id int64) (*model.CachedUser, error) {
	result, err := c.client.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrCacheMiss
	}

	cached := &model.CachedUser{
		Name:      result["name"],
		Email:     result["email"],
		CreatedAt: result["created_at"],
	}

	return cached, nil
}

// SetUser stores the password-free view of a user in cache.
// The password hash is never written to Redis.
func (c *Cache) SetUser(ctx context.Context, user *model.User) error {
	key := userKey(user.ID)
	cached := user.ToCachedUser()

	fields := map[string]any{
		"name":       cached.Name,
		"email":      cached.Email,
		"created_at": cached.CreatedAt,
	}

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, DefaultUserTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache user: %w", err)
	}

	return nil
}

// DeleteUser removes a user view from cache.
func (c *Cache) DeleteUser(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, userKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete user from cache: %w", err)
	}

	return nil
}
