package domain

import "github.com/x-xyz/marketplace/base/ctx"

// Transactor runs a unit of work atomically, every repository call made with
// the ctx handed to run joins the same transaction.
type Transactor interface {
	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}
