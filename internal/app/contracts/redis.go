package contracts

import (
	"context"
	"time"
)

// RedisRepository is the minimal key/value surface the send lock needs.
type RedisRepository interface {
	SetNX(ctx context.Context, key, value string, exp time.Duration) (bool, error)
	DeleteIfEquals(ctx context.Context, key, value string) (bool, error)
}
