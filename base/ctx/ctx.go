package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/marketplace/base/log"
)

// Ctx carries a request scoped context together with its logger
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func Todo() Ctx {
	return Ctx{
		Context: context.TODO(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. the session context handed out by the
// mongo driver, keeping the logger of parent.
func From(parent Ctx, c context.Context) Ctx {
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}
}

func WithValue(parent Ctx, key interface{}, val interface{}) Ctx {
	c := Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger,
	}
	if k, ok := key.(string); ok {
		c.Logger = parent.Logger.WithField(k, val)
	}
	return c
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithLogFields only decorates the logger
func WithLogFields(parent Ctx, fields log.Fields) Ctx {
	return Ctx{
		Context: parent.Context,
		Logger:  parent.Logger.WithFields(fields),
	}
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
