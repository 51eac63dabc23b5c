package contracts

import (
	"context"
	"time"
)

// LockerService serializes work on a key across backend replicas.
// TryLock returns the token that must be handed back to Unlock.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, token string) error
}
