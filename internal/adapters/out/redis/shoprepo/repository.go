// Package shoprepo keeps the shop's open/closed flag in Redis.
package shoprepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// StatusKey holds "1" while the shop takes orders and "0" while it is closed.
const StatusKey = "SHOP_STATUS"

const (
	open   = "1"
	closed = "0"
)

type RedisShopStatusRepository struct {
	client redis.UniversalClient
}

func NewRedisShopStatusRepository(client redis.UniversalClient) *RedisShopStatusRepository {
	return &RedisShopStatusRepository{client: client}
}

// IsOpen treats a missing key as open, so a fresh deployment accepts orders.
func (r *RedisShopStatusRepository) IsOpen(ctx context.Context) (bool, error) {
	value, err := r.client.Get(ctx, StatusKey).Result()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read shop status: %w", err)
	}
	return value != closed, nil
}

func (r *RedisShopStatusRepository) SetOpen(ctx context.Context, isOpen bool) error {
	value := closed
	if isOpen {
		value = open
	}
	if err := r.client.Set(ctx, StatusKey, value, 0).Err(); err != nil {
		return fmt.Errorf("write shop status: %w", err)
	}
	return nil
}
