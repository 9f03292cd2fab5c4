package state

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// consumeScript removes the attempt in the same round trip that reads it,
// so two callbacks racing on one handle cannot both observe the entry.
var consumeScript = redis.NewScript(`
local v = redis.call('GET', KEYS[1])
if v then
	redis.call('DEL', KEYS[1])
end
return v
`)

// RedisStore keeps pending attempts in Redis with per-entry TTLs. Safe for
// multi-process deployments: Consume is atomic via a server-side script.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures the Redis-backed store.
type RedisOption func(*RedisStore)

// WithPrefix sets the key prefix for attempt entries.
// Default: "oauthflow:attempt".
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewRedis creates a Redis-backed attempt store.
// The client should be obtained from pkg/redis.Open.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "oauthflow:attempt",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save persists the attempt with a TTL derived from its ExpiresAt, so
// abandoned attempts clean themselves up.
func (s *RedisStore) Save(ctx context.Context, a *Attempt) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}

	ttl := time.Until(a.ExpiresAt)
	if ttl <= 0 {
		return ErrExpired
	}
	return s.client.Set(ctx, s.key(a.Handle), data, ttl).Err()
}

// Consume atomically retrieves and deletes the attempt under handle.
func (s *RedisStore) Consume(ctx context.Context, handle, suppliedState string) (*Attempt, error) {
	res, err := consumeScript.Run(ctx, s.client, []string{s.key(handle)}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	data, ok := res.(string)
	if !ok || data == "" {
		return nil, ErrNotFound
	}

	var a Attempt
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, err
	}
	return validate(&a, suppliedState)
}

func (s *RedisStore) key(handle string) string {
	return s.prefix + ":" + handle
}

var _ Store = (*RedisStore)(nil)
