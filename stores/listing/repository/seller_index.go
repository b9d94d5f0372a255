package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/service/query"
)

type sellerIndexRepoImpl struct {
	q query.Mongo
}

func NewSellerIndexRepo(q query.Mongo) listing.SellerIndexRepo {
	return &sellerIndexRepoImpl{q}
}

func (im *sellerIndexRepoImpl) Append(c ctx.Ctx, seller domain.Address, id listing.Id) error {
	res := listing.SellerIndex{}
	if err := im.q.Push(c, domain.TableSellerListings, bson.M{"_id": seller.ToLower()}, &res, "listingIds", id); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"seller":    seller,
			"listingId": id,
		}).Error("q.Push failed")
		return err
	}
	return nil
}

func (im *sellerIndexRepoImpl) FindBySeller(c ctx.Ctx, seller domain.Address) ([]listing.Id, error) {
	res := listing.SellerIndex{}
	if err := im.q.FindOne(c, domain.TableSellerListings, bson.M{"_id": seller.ToLower()}, &res); err == query.ErrNotFound {
		return []listing.Id{}, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
		}).Error("q.FindOne failed")
		return nil, err
	}
	if res.ListingIds == nil {
		return []listing.Id{}, nil
	}
	return res.ListingIds, nil
}
