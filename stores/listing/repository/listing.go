package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/service/query"
)

const counterListing = "listing"

type counter struct {
	Id  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingRepoImpl{q}
}

func (im *listingRepoImpl) NextId(c ctx.Ctx) (listing.Id, error) {
	res := counter{}
	if err := im.q.Increment(c, domain.TableCounters, bson.M{"_id": counterListing}, &res, "seq", int64(1)); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return listing.Id(res.Seq), nil
}

func (im *listingRepoImpl) Create(c ctx.Ctx, l *listing.Listing) error {
	l.LowerCase()
	if err := im.q.Insert(c, domain.TableListings, l); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": l.Id,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *listingRepoImpl) FindOne(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"_id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *listingRepoImpl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, listing.FindAllOptions, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, options, err
	}

	query := bson.M{}
	if options.Seller != nil {
		query["seller"] = *options.Seller
	}
	if options.Active != nil {
		query["active"] = *options.Active
	}
	if options.Ids != nil {
		query["_id"] = bson.M{"$in": options.Ids}
	}
	return query, options, nil
}

func (im *listingRepoImpl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]listing.Listing, error) {
	query, options, err := im.makeQuery(opts...)
	if err != nil {
		c.WithField("err", err).Error("makeQuery failed")
		return nil, err
	}

	var (
		offset = 0
		limit  = 0
		sort   = "_id"
	)
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []listing.Listing{}
	if err := im.q.Search(c, domain.TableListings, offset, limit, sort, query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *listingRepoImpl) PatchActive(c ctx.Ctx, id listing.Id, patchable listing.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("MakeBsonM failed")
		return err
	}

	selector := bson.M{"_id": id, "active": true}
	if err := im.q.Patch(c, domain.TableListings, selector, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"updater":   updater,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
