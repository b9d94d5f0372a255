package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/treasury"
	"github.com/x-xyz/marketplace/service/query"
)

const singletonId = "treasury"

var (
	timeNow  = time.Now
	selector = bson.M{"_id": singletonId}
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) treasury.Repo {
	return &impl{q}
}

func (im *impl) Init(c ctx.Ctx, feeRateBps uint64) error {
	updater := bson.M{"$setOnInsert": bson.M{
		"feeRateBps": int64(feeRateBps),
		"balance":    int64(0),
		"updatedAt":  timeNow().UTC(),
	}}
	if err := im.q.CustomPatch(c, domain.TableTreasury, selector, updater, true); err != nil {
		c.WithField("err", err).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) Get(c ctx.Ctx) (*treasury.FeeConfig, error) {
	res := &treasury.FeeConfig{}
	if err := im.q.FindOne(c, domain.TableTreasury, selector, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) SetFeeRate(c ctx.Ctx, feeRateBps uint64) error {
	updater := bson.M{
		"feeRateBps": int64(feeRateBps),
		"updatedAt":  timeNow().UTC(),
	}
	if err := im.q.Patch(c, domain.TableTreasury, selector, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"feeRateBps": feeRateBps,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *impl) AddBalance(c ctx.Ctx, amount uint64) error {
	if amount > domain.MaxAmount {
		return domain.ErrBalanceOverflow
	}
	sel := bson.M{
		"_id":     singletonId,
		"balance": bson.M{"$lte": int64(domain.MaxAmount - amount)},
	}
	updater := bson.M{
		"$inc": bson.M{"balance": int64(amount)},
		"$set": bson.M{"updatedAt": timeNow().UTC()},
	}
	if err := im.q.CustomPatch(c, domain.TableTreasury, sel, updater, false); err == query.ErrNotFound {
		return domain.ErrBalanceOverflow
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"amount": amount,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) ResetBalance(c ctx.Ctx) (uint64, error) {
	cfg, err := im.Get(c)
	if err != nil {
		return 0, err
	}
	if cfg.Balance == 0 {
		return 0, nil
	}

	sel := bson.M{"_id": singletonId, "balance": int64(cfg.Balance)}
	updater := bson.M{"balance": int64(0), "updatedAt": timeNow().UTC()}
	if err := im.q.Patch(c, domain.TableTreasury, sel, updater); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"balance": cfg.Balance,
		}).Error("q.Patch failed")
		return 0, err
	}
	return cfg.Balance, nil
}
