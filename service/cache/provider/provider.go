package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
)

// ErrNotFound is returned by Get on a miss or an expired key
var ErrNotFound = errors.New("cache miss")

// Provider stores raw bytes for cache.Service. Keys arrive already prefixed.
type Provider interface {
	// Get returns the value and its remaining ttl, 0 when it never expires
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	// Set with ttl 0 keeps the value until it is deleted or evicted
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	// Del of a missing key is not an error
	Del(c ctx.Ctx, key string) error
}
