package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const redisKeyPrefix = "medagendar:"

// RedisKV persists state keys in Redis.
type RedisKV struct {
	redis  *redis.Client
	tracer trace.Tracer
}

// NewRedisKV creates a Redis-backed KV. A nil client is rejected at the call
// site, not here; wiring decides between Redis and memory.
func NewRedisKV(redisClient *redis.Client) *RedisKV {
	if redisClient == nil {
		return nil
	}
	return &RedisKV{
		redis:  redisClient,
		tracer: otel.Tracer("medagendar.internal.store.redis"),
	}
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := s.tracer.Start(ctx, "store.redis.get")
	defer span.End()

	data, err := s.redis.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("store: redis get %s: %w", key, err)
	}
	return data, nil
}

func (s *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := s.tracer.Start(ctx, "store.redis.set")
	defer span.End()

	if err := s.redis.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("store: redis set %s: %w", key, err)
	}
	return nil
}
