package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOTPPrefix = "otp:"

// OTPStore holds one pending OTP per mobile number.
type OTPStore interface {
	Save(ctx context.Context, mobile, code string, ttl time.Duration) error
	Get(ctx context.Context, mobile string) (string, error)
	Delete(ctx context.Context, mobile string) error
}

type redisOTPStore struct {
	redisClient *redis.Client
}

func NewOTPStore(redisClient *redis.Client) OTPStore {
	return &redisOTPStore{redisClient: redisClient}
}

func (s *redisOTPStore) Save(ctx context.Context, mobile, code string, ttl time.Duration) error {
	return s.redisClient.Set(ctx, redisOTPPrefix+mobile, code, ttl).Err()
}

// Get returns "" with a nil error when no OTP is pending or it has expired.
func (s *redisOTPStore) Get(ctx context.Context, mobile string) (string, error) {
	val, err := s.redisClient.Get(ctx, redisOTPPrefix+mobile).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *redisOTPStore) Delete(ctx context.Context, mobile string) error {
	return s.redisClient.Del(ctx, redisOTPPrefix+mobile).Err()
}
