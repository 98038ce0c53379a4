package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const blacklistPrefix = "blacklist:"

// TokenBlacklistRedis نگهداری jti توکن‌های باطل‌شده تا پایان عمرشان
type TokenBlacklistRedis struct {
	Client *redis.Client
}

func NewTokenBlacklistRedis(client *redis.Client) *TokenBlacklistRedis {
	return &TokenBlacklistRedis{
		Client: client,
	}
}

// Add ثبت jti با TTL برابر عمر باقی‌مانده‌ی توکن؛ Redis خودش منقضی می‌کند
func (r *TokenBlacklistRedis) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// توکن منقضی‌شده نیازی به ثبت ندارد
		return nil
	}
	return r.Client.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

func (r *TokenBlacklistRedis) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := r.Client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
