package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketplace/base/backoff"
	"github.com/x-xyz/marketplace/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	// Retry dials up to 4 times with exponential backoff, tests leave it off
	Retry bool
}

// MustConnectRedis connects to one redis uri
// NOTE This function panics if the connection fails.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis connects to one redis uri
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle := 64
	maxActive := 256
	retry := false
	if len(param) > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu * param[0].PoolMultiplier / 4)
		maxActive = int(cpu * param[0].PoolMultiplier)
		retry = param[0].Retry
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	attempts := 1
	if retry {
		attempts = 4
	}
	b := backoff.NewExponential(500*time.Millisecond, 4*time.Second)
	err := b.Retry(context.Background(), attempts, func() error {
		c, err := p.Dial()
		if err != nil {
			log.Log().WithFields(log.Fields{
				"redisURI": uri,
				"err":      err,
				"retry":    b.Count(),
			}).Error("fail to dial Redis")
			return err
		}
		defer c.Close()
		if _, err := c.Do("PING"); err != nil {
			log.Log().WithFields(log.Fields{
				"redisURI": uri,
				"err":      err,
				"retry":    b.Count(),
			}).Error("fail to ping Redis")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")
	return p, nil
}
