package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/event"
	"github.com/x-xyz/marketplace/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &impl{q}
}

// EnsureIndexes prepares the event log collection
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndexes(c, domain.TableEvents,
		query.Index{Keys: bson.D{{Key: "listingId", Value: 1}, {Key: "createdAt", Value: 1}}},
		query.Index{Keys: bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: 1}}},
	)
}

func (im *impl) Insert(c ctx.Ctx, records ...event.Record) error {
	for _, r := range records {
		if err := im.q.Insert(c, domain.TableEvents, r); err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"id":   r.Id,
				"type": r.Type,
			}).Error("q.Insert failed")
			return err
		}
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]event.Record, error) {
	options, err := event.GetFindAllOptions(opts...)
	if err != nil {
		c.WithField("err", err).Error("event.GetFindAllOptions failed")
		return nil, err
	}

	query := bson.M{}
	if options.ListingId != nil {
		query["listingId"] = *options.ListingId
	}
	if options.Type != nil {
		query["type"] = *options.Type
	}

	offset, limit := 0, 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []event.Record{}
	if err := im.q.SearchNSorts(c, domain.TableEvents, offset, limit, []string{"createdAt", "_id"}, query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}
