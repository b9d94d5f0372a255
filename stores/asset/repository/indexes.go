package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/service/query"
)

// EnsureIndexes prepares the ledger collections
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(c, domain.TableAssets, query.Index{
		Keys:   bson.D{{Key: "assetRef", Value: 1}, {Key: "assetId", Value: 1}},
		Unique: true,
	}); err != nil {
		return err
	}
	return q.EnsureIndexes(c, domain.TableAssetApprovals)
}
