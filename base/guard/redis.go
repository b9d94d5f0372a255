package guard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/marketplace/base/backoff"
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/keys"
	"github.com/x-xyz/marketplace/service/redis"
)

const (
	defaultLease = 30 * time.Second
	backoffStart = 10 * time.Millisecond
	backoffLimit = 500 * time.Millisecond
)

type RedisConfig struct {
	Name  string
	Redis redis.Service
	// Lease bounds how long a crashed holder blocks the others
	Lease time.Duration
}

type redisGuard struct {
	name  string
	key   string
	redis redis.Service
	lease time.Duration
}

// NewRedis guards across every instance sharing the redis
func NewRedis(cfg RedisConfig) Guard {
	lease := cfg.Lease
	if lease <= 0 {
		lease = defaultLease
	}
	return &redisGuard{
		name:  cfg.Name,
		key:   keys.RedisKey(keys.PfxGuard, cfg.Name),
		redis: cfg.Redis,
		lease: lease,
	}
}

func (g *redisGuard) Do(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	if held(c, g.name) {
		c.WithField("guard", g.name).Warn("reentrant call rejected")
		return domain.ErrReentrantCall
	}

	token := []byte(uuid.NewString())
	if err := g.acquire(c, token); err != nil {
		return err
	}
	defer g.release(c, token)

	return fn(markHeld(c, g.name))
}

func (g *redisGuard) acquire(c ctx.Ctx, token []byte) error {
	b := backoff.NewExponential(backoffStart, backoffLimit)
	for {
		ok, err := g.redis.SetNX(c, g.key, token, g.lease)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "key": g.key}).Error("redis.SetNX failed")
			return err
		}
		if ok {
			return nil
		}
		if err := b.Backoff(c); err != nil {
			return err
		}
	}
}

func (g *redisGuard) release(c ctx.Ctx, token []byte) {
	// the caller may be canceled by now, the lease must still be dropped
	bg := ctx.From(c, context.Background())
	released, err := g.redis.DelIfEqual(bg, g.key, token)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": g.key}).Error("redis.DelIfEqual failed")
		return
	}
	if !released {
		c.WithFields(log.Fields{"key": g.key, "lease": g.lease}).Warn("lease expired before release")
	}
}
