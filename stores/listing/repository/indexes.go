package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/service/query"
)

// EnsureIndexes prepares the listing collections
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(c, domain.TableListings,
		query.Index{Keys: bson.D{{Key: "active", Value: 1}, {Key: "_id", Value: 1}}},
		query.Index{Keys: bson.D{{Key: "seller", Value: 1}, {Key: "_id", Value: 1}}},
	); err != nil {
		return err
	}
	if err := q.EnsureIndexes(c, domain.TableSellerListings); err != nil {
		return err
	}
	return q.EnsureIndexes(c, domain.TableCounters)
}
