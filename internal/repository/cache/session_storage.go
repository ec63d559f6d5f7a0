package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStorage adapts the Redis client to fiber's Storage interface so
// the session middleware keeps its state in Redis instead of memory.
type SessionStorage struct {
	client *redis.Client
}

func NewSessionStorage(r *Redis) *SessionStorage {
	return &SessionStorage{client: r.Client()}
}

// Get returns nil, nil when the key does not exist, as fiber expects.
func (s *SessionStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), sessionKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), sessionKeyPrefix+key, val, exp).Err()
}

func (s *SessionStorage) Delete(key string) error {
	return s.client.Del(context.Background(), sessionKeyPrefix+key).Err()
}

func (s *SessionStorage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close is a no-op; the shared Redis client is closed by its owner.
func (s *SessionStorage) Close() error {
	return nil
}
