package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// KVStore 对 Redis 字符串与哈希操作的薄封装
type KVStore struct {
	rdb *redis.Client
}

func NewKVStore(rdb *redis.Client) *KVStore {
	return &KVStore{rdb: rdb}
}

// SetValue 设置键值对 (不过期)
func (s *KVStore) SetValue(ctx context.Context, key string, value interface{}) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

// SetWithExpiration 设置键值对并设置过期时间
func (s *KVStore) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值，key 不存在时返回空串
func (s *KVStore) GetValue(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// HSet 写入哈希字段
func (s *KVStore) HSet(ctx context.Context, key string, field string, value interface{}) error {
	return s.rdb.HSet(ctx, key, field, value).Err()
}
