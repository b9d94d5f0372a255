package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/payment"
	"github.com/x-xyz/marketplace/service/query"
)

type ledgerImpl struct {
	q      query.Mongo
	escrow domain.Address
}

// NewLedger is the mongo backed payment channel, escrow holds collected
// payments until they are paid out
func NewLedger(q query.Mongo, escrow domain.Address) payment.Ledger {
	return &ledgerImpl{q, escrow.ToLower()}
}

func (im *ledgerImpl) BalanceOf(c ctx.Ctx, address domain.Address) (uint64, error) {
	res := payment.Balance{}
	if err := im.q.FindOne(c, domain.TableBalances, bson.M{"_id": address.ToLower()}, &res); err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("q.FindOne failed")
		return 0, err
	}
	return res.Amount, nil
}

func (im *ledgerImpl) debit(c ctx.Ctx, from domain.Address, amount uint64) error {
	if amount > domain.MaxAmount {
		return domain.ErrInsufficientFunds
	}
	selector := bson.M{
		"_id":     from.ToLower(),
		"balance": bson.M{"$gte": int64(amount)},
	}
	updater := bson.M{"$inc": bson.M{"balance": -int64(amount)}}
	if err := im.q.CustomPatch(c, domain.TableBalances, selector, updater, false); err == query.ErrNotFound {
		return domain.ErrInsufficientFunds
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"from":   from,
			"amount": amount,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *ledgerImpl) credit(c ctx.Ctx, to domain.Address, amount uint64) error {
	if amount > domain.MaxAmount {
		return domain.ErrBalanceOverflow
	}
	// an existing balance that would overflow misses the selector and the
	// upsert collides with its _id
	selector := bson.M{
		"_id":     to.ToLower(),
		"balance": bson.M{"$not": bson.M{"$gt": int64(domain.MaxAmount - amount)}},
	}
	updater := bson.M{"$inc": bson.M{"balance": int64(amount)}}
	if err := im.q.CustomPatch(c, domain.TableBalances, selector, updater, true); err == query.ErrDuplicateKey {
		return domain.ErrBalanceOverflow
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *ledgerImpl) Collect(c ctx.Ctx, from domain.Address, amount uint64) error {
	if err := im.debit(c, from, amount); err != nil {
		return xerrors.Errorf("collect from %s: %w", from, err)
	}
	return im.credit(c, im.escrow, amount)
}

func (im *ledgerImpl) Send(c ctx.Ctx, to domain.Address, amount uint64) error {
	if err := im.debit(c, im.escrow, amount); err != nil {
		return xerrors.Errorf("escrow: %w", err)
	}
	return im.credit(c, to, amount)
}

func (im *ledgerImpl) Credit(c ctx.Ctx, to domain.Address, amount uint64) error {
	return im.credit(c, to, amount)
}
