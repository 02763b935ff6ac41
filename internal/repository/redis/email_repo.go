package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	ResetCodePrefix     = "email:code:reset"
)

var (
	ErrCodeNotFound  = errors.New("email code not found")
	ErrCodeSetFailed = errors.New("email code set failed")
	ErrCodeDelFailed = errors.New("email code delete failed")
)

// EmailRepository 存放重置密码的一次性验证码
type EmailRepository struct{}

func (e *EmailRepository) SetResetCode(email, code string) error {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	if err := Client.Set(context.Background(), key, code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrCodeSetFailed
	}
	return nil
}

func (e *EmailRepository) GetResetCode(email string) (string, error) {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	val, err := Client.Get(context.Background(), key).Result()
	if err != nil {
		// redis.Nil 表示不存在或已过期
		return "", ErrCodeNotFound
	}
	return val, nil
}

// DeleteResetCode 校验通过后一次性删除（幂等）
func (e *EmailRepository) DeleteResetCode(email string) error {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrCodeDelFailed
	}
	return nil
}
