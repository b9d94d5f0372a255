package usecase

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/payment"
)

type impl struct {
	owner  domain.Address
	ledger payment.Ledger
}

func New(owner domain.Address, ledger payment.Ledger) payment.UseCase {
	return &impl{
		owner:  owner.ToLower(),
		ledger: ledger,
	}
}

func (im *impl) BalanceOf(c ctx.Ctx, address domain.Address) (uint64, error) {
	balance, err := im.ledger.BalanceOf(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("ledger.BalanceOf failed")
		return 0, err
	}
	return balance, nil
}

func (im *impl) Credit(c ctx.Ctx, caller, to domain.Address, amount uint64) error {
	if !caller.Equals(im.owner) {
		return domain.ErrUnauthorized
	}
	if amount == 0 || amount > domain.MaxAmount {
		return domain.ErrBadParamInput
	}
	if err := im.ledger.Credit(c, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount,
		}).Error("ledger.Credit failed")
		return err
	}
	return nil
}
