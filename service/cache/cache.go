package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// OneTimeGetter loads the value on a miss, it must return a pointer
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service is a typed read-through cache on top of a provider. Keys are
// prefixed with ServiceConfig.Pfx, so several services may share a provider.
type Service interface {
	// GetByFunc fills container from the cache or, on a miss, from getter
	// and stores the result for Ttl
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	// Del invalidates key, deleting a missing key is not an error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
	// Serialize and Deserialize default to encoding/json
	Serialize   Serializer
	Deserialize Deserializer
}
