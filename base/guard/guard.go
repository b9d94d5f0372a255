// Package guard serializes mutating operations across callers and rejects
// re-entrant calls made from inside a guarded operation.
package guard

import (
	"github.com/x-xyz/marketplace/base/ctx"
)

// Guard runs fn exclusively. A call whose ctx descends from a ctx handed
// out by the same guard fails with domain.ErrReentrantCall.
type Guard interface {
	Do(c ctx.Ctx, fn func(ctx.Ctx) error) error
}

type heldKey struct {
	name string
}

func held(c ctx.Ctx, name string) bool {
	v, _ := c.Value(heldKey{name}).(bool)
	return v
}

func markHeld(c ctx.Ctx, name string) ctx.Ctx {
	return ctx.WithValue(c, heldKey{name}, true)
}
