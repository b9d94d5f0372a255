package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/metrics"
	"github.com/x-xyz/marketplace/domain/keys"
	"github.com/x-xyz/marketplace/service/cache/provider"
)

var met = metrics.New("cache")

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	im := &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
	if im.serialize == nil {
		im.serialize = json.Marshal
	}
	if im.deserialize == nil {
		im.deserialize = json.Unmarshal
	}
	return im
}

func (im *impl) key(key string) string {
	return keys.RedisKey(im.pfx, key)
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		met.BumpSum("hit", 1, "pfx", im.pfx)
		return nil
	}
	met.BumpSum("miss", 1, "pfx", im.pfx)
	if err != ErrNotFound {
		// serve from the getter while the cache is broken
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("Get failed, falling back to getter")
	}

	val, err := getter()
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("GetByFunc getter failed")
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("Set failed")
	}

	reflect.ValueOf(container).Elem().Set(reflect.Indirect(reflect.ValueOf(val)))
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	val, _, err := im.cache.Get(c, im.key(key))
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Get failed")
		return err
	}

	if err := im.deserialize(val, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	val, err := im.serialize(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	if err := im.cache.Set(c, im.key(key), val, im.ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if err := im.cache.Del(c, im.key(key)); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Del failed")
		return err
	}
	met.BumpSum("del", 1, "pfx", im.pfx)
	return nil
}
