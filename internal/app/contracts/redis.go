package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Get returns "" without error when the key does not exist.
	Get(ctx context.Context, key string) (string, error)
}
