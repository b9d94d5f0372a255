package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/metrics"
	"github.com/x-xyz/marketplace/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2
)

var (
	delBatchSize = 100

	// deletes KEYS[1] only when its value equals ARGV[1]
	delIfEqualScript = redis.NewScript(1, `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis service
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	if r.pools == nil || r.pools.Src == nil {
		return nil, ErrNoPool
	}

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)
	// release asap, a held connection keeps the pool busy
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) bumpTTL(expire time.Duration, tags []string) {
	if expire == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
	} else {
		r.met.BumpAvg("ttl", expire.Seconds(), tags...)
	}
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		context.WithField("err", err).WithField("key", key).Error("GET redis failed")
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.bumpTTL(expire, tags)
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo(context, "SET", key, val)
	} else {
		_, err = r.connDo(context, "SET", key, val, "PX", int64(expire/time.Millisecond))
	}
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("set redis failed")
	}
	return err
}

func (r *redImpl) SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error) {
	tags := r.tags("setnx", key)
	defer r.met.BumpTime("time", tags...).End()
	r.bumpTTL(expire, tags)

	var err error
	if expire == Forever {
		_, err = redis.String(r.connDo(context, "SET", key, val, "NX"))
	} else {
		_, err = redis.String(r.connDo(context, "SET", key, val, "NX", "PX", int64(expire/time.Millisecond)))
	}
	if err == redis.ErrNil {
		// key exists, nothing set
		return false, nil
	} else if err != nil {
		context.WithField("err", err).WithField("key", key).Error("setnx redis failed")
		return false, err
	}
	return true, nil
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}

	tags := r.tags("del", ks[0])
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("elements", float64(len(ks)), tags...)

	affected := 0
	for i := 0; i < len(ks); i += delBatchSize {
		end := i + delBatchSize
		if end > len(ks) {
			end = len(ks)
		}
		res, err := redis.Int(r.connDo(context, "DEL", redis.Args{}.AddFlat(ks[i:end])...))
		if err != nil {
			context.WithField("err", err).Error("DEL redis failed")
			return 0, err
		}
		affected += res
	}
	return affected, nil
}

func (r *redImpl) DelIfEqual(context ctx.Ctx, key string, val []byte) (bool, error) {
	tags := r.tags("delifequal", key)
	defer r.met.BumpTime("time", tags...).End()

	conn, err := r.getConn()
	if err != nil {
		return false, err
	}
	defer conn.Close()

	n, err := redis.Int(delIfEqualScript.Do(conn, key, val))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("delIfEqual redis failed")
		return false, err
	}
	return n == 1, nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	tags := r.tags("exists", key)
	defer r.met.BumpTime("time", tags...).End()

	ok, err := redis.Bool(r.connDo(context, "EXISTS", key))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("EXISTS redis failed")
		return false, err
	}
	return ok, nil
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, val int) (int64, error) {
	tags := r.tags("incrby", key)
	defer r.met.BumpTime("time", tags...).End()

	res, err := redis.Int64(r.connDo(context, "INCRBY", key, val))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("INCRBY redis failed")
		return 0, err
	}
	return res, nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	tags := r.tags("ttl", key)
	defer r.met.BumpTime("time", tags...).End()

	ttl, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("TTL redis failed")
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}
