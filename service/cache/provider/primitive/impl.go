package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process provider of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(logFields(im.name, key, err)).Error("cache.GetWithExpiration failed")
		return nil, 0, err
	}
	// exp is the absolute expiry in unix seconds, 0 when the entry never expires
	if exp == 0 {
		return val, 0, nil
	}
	return val, time.Until(time.Unix(int64(exp), 0)), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithFields(logFields(im.name, key, err)).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

func logFields(name, key string, err error) map[string]interface{} {
	return map[string]interface{}{"cache": name, "key": key, "err": err}
}
