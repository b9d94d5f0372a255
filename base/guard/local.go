package guard

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

type local struct {
	name string
	sem  chan struct{}
}

// NewLocal guards within one process
func NewLocal(name string) Guard {
	return &local{
		name: name,
		sem:  make(chan struct{}, 1),
	}
}

func (g *local) Do(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	if held(c, g.name) {
		c.WithField("guard", g.name).Warn("reentrant call rejected")
		return domain.ErrReentrantCall
	}

	select {
	case <-c.Done():
		return c.Err()
	case g.sem <- struct{}{}:
	}
	defer func() { <-g.sem }()

	return fn(markHeld(c, g.name))
}
