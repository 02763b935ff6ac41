package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	SessionTokenPrefix = "login:user:token"
)

// SessionRepository 记录每个用户当前有效的 access token，支持登出吊销。
// Client 为 nil 时所有方法退化为 no-op，token 只靠自身签名和有效期。
type SessionRepository struct{}

func (r *SessionRepository) AddToken(userID uint64, token string, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, userID)
	if err := Client.Set(context.Background(), key, token, ttl).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetToken(userID uint64) (string, error) {
	if Client == nil {
		return "", ErrTokenNotFound
	}
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, userID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *SessionRepository) DeleteToken(userID uint64) error {
	if Client == nil {
		return nil
	}
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, userID)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
