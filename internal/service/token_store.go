package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisAccessTokenPrefix  = "access_token:"
	redisRefreshTokenPrefix = "refresh_token:"
)

// TokenStore tracks issued token IDs so tokens can be revoked before they
// expire. A token whose ID is absent from the store is rejected even when
// its signature is valid.
type TokenStore interface {
	SaveAccessToken(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	SaveRefreshToken(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	AccessTokenExists(ctx context.Context, userID, tokenID string) (bool, error)
	RefreshTokenExists(ctx context.Context, userID, tokenID string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, tokenID string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}

type redisTokenStore struct {
	redisClient *redis.Client
}

func NewTokenStore(redisClient *redis.Client) TokenStore {
	return &redisTokenStore{redisClient: redisClient}
}

func accessTokenKey(userID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", redisAccessTokenPrefix, userID, tokenID)
}

func refreshTokenKey(userID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", redisRefreshTokenPrefix, userID, tokenID)
}

func (s *redisTokenStore) SaveAccessToken(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	return s.redisClient.Set(ctx, accessTokenKey(userID, tokenID), "1", ttl).Err()
}

func (s *redisTokenStore) SaveRefreshToken(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	return s.redisClient.Set(ctx, refreshTokenKey(userID, tokenID), "1", ttl).Err()
}

func (s *redisTokenStore) AccessTokenExists(ctx context.Context, userID, tokenID string) (bool, error) {
	return s.exists(ctx, accessTokenKey(userID, tokenID))
}

func (s *redisTokenStore) RefreshTokenExists(ctx context.Context, userID, tokenID string) (bool, error) {
	return s.exists(ctx, refreshTokenKey(userID, tokenID))
}

func (s *redisTokenStore) exists(ctx context.Context, key string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) DeleteRefreshToken(ctx context.Context, userID, tokenID string) error {
	return s.redisClient.Del(ctx, refreshTokenKey(userID, tokenID)).Err()
}

// DeleteAllForUser revokes every live token for a user, both access and
// refresh. Used on logout.
func (s *redisTokenStore) DeleteAllForUser(ctx context.Context, userID string) error {
	for _, prefix := range []string{redisAccessTokenPrefix, redisRefreshTokenPrefix} {
		iter := s.redisClient.Scan(ctx, 0, prefix+userID+":*", 100).Iterator()
		for iter.Next(ctx) {
			if err := s.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}
