package repository

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/service/query"
)

// EnsureIndexes prepares the balances collection, _id is the only key
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndexes(c, domain.TableBalances)
}
