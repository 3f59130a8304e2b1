package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix is prepended to the keys written by a [RedisStore]
// when no prefix is given.
const DefaultPrefix = "money:rate:"

// RedisClient is the subset of [redis.Cmdable] used by [RedisStore].
// It is satisfied by *redis.Client and *redis.ClusterClient.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisStore is a [Store] keeping entries in Redis as JSON values.
type RedisStore struct {
	client RedisClient
	prefix string
}

// NewRedisStore returns a store writing keys with the given prefix.
func NewRedisStore(client RedisClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisStoreFromURL connects to the Redis server at a URL such as
// redis://localhost:6379/0.
func NewRedisStoreFromURL(url, prefix string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return NewRedisStore(redis.NewClient(opt), prefix), nil
}

// Get returns the entry under key.
func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("redis get %v: %w", key, err)
	}
	var e Entry
	if err := json.Unmarshal([]byte(val), &e); err != nil {
		return Entry{}, false, fmt.Errorf("decoding %v: %w", key, err)
	}
	return e, true, nil
}

// Set stores the entry under key for ttl.
func (s *RedisStore) Set(ctx context.Context, key string, e Entry, ttl time.Duration) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding %v: %w", key, err)
	}
	if err := s.client.Set(ctx, s.prefix+key, string(data), ttl).Err(); err != nil {
		return fmt.Errorf("redis set %v: %w", key, err)
	}
	return nil
}

// Close closes the client of the store when it can be closed,
// as is the case for stores made by [NewRedisStoreFromURL].
func (s *RedisStore) Close() error {
	if c, ok := s.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
