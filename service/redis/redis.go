package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
)

// Forever is used as expire to keep the key without ttl
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoPool is returned when no pool is configured
	ErrNoPool = errors.New("redis: no pool")
)

// Service wraps the redis commands used across stores
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX returns false when the key already exists
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error)
	Del(context ctx.Ctx, ks ...string) (int, error)
	// DelIfEqual deletes key only when it still holds val
	DelIfEqual(context ctx.Ctx, key string, val []byte) (bool, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	// TTL returns the remaining seconds of key
	TTL(context ctx.Ctx, key string) (int, error)
}
