package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const denylistPrefix = "denylist:"

// DenylistService revokes issued tokens until they expire on their own.
type DenylistService struct {
	Redis *redis.Client
	Ctx   context.Context
}

func NewDenylistService(rdb *redis.Client) *DenylistService {
	return &DenylistService{Redis: rdb, Ctx: context.Background()}
}

func (s *DenylistService) Add(tokenString string, expiration time.Duration) error {
	key := denylistPrefix + tokenString
	return s.Redis.Set(s.Ctx, key, 1, expiration).Err()
}

func (s *DenylistService) Contains(tokenString string) (bool, error) {
	key := denylistPrefix + tokenString
	val, err := s.Redis.Get(s.Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return val != "", nil
}
