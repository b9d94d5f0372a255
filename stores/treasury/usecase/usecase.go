package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/guard"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/event"
	"github.com/x-xyz/marketplace/domain/payment"
	"github.com/x-xyz/marketplace/domain/treasury"
	"github.com/x-xyz/marketplace/service/cache"
)

const cacheKeyFeeConfig = "feeConfig"

type TreasuryUseCaseCfg struct {
	Owner      domain.Address
	Repo       treasury.Repo
	Payment    payment.Channel
	Event      event.UseCase
	Guard      guard.Guard
	Transactor domain.Transactor
	Cache      cache.Service
}

type impl struct {
	owner      domain.Address
	repo       treasury.Repo
	payment    payment.Channel
	event      event.UseCase
	guard      guard.Guard
	transactor domain.Transactor
	cache      cache.Service
}

func New(cfg *TreasuryUseCaseCfg) treasury.UseCase {
	return &impl{
		owner:      cfg.Owner.ToLower(),
		repo:       cfg.Repo,
		payment:    cfg.Payment,
		event:      cfg.Event,
		guard:      cfg.Guard,
		transactor: cfg.Transactor,
		cache:      cfg.Cache,
	}
}

func (im *impl) Owner() domain.Address {
	return im.owner
}

func (im *impl) FeeConfig(c ctx.Ctx) (*treasury.FeeConfig, error) {
	res := &treasury.FeeConfig{}
	getter := func() (interface{}, error) {
		return im.repo.Get(c)
	}
	if err := im.cache.GetByFunc(c, cacheKeyFeeConfig, res, getter); err != nil {
		c.WithField("err", err).Error("cache.GetByFunc failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FeeRate(c ctx.Ctx) (uint64, error) {
	cfg, err := im.repo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("repo.Get failed")
		return 0, err
	}
	return cfg.FeeRateBps, nil
}

func (im *impl) Accrue(c ctx.Ctx, fee uint64) error {
	if fee == 0 {
		return nil
	}
	if err := im.repo.AddBalance(c, fee); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"fee": fee,
		}).Error("repo.AddBalance failed")
		return err
	}
	im.invalidate(c)
	return nil
}

func (im *impl) SetFeeRate(c ctx.Ctx, caller domain.Address, feeRateBps uint64) error {
	var records []event.Record
	err := im.guard.Do(c, func(c ctx.Ctx) error {
		if !caller.Equals(im.owner) {
			return domain.ErrUnauthorized
		}
		if feeRateBps > treasury.MaxFeeRateBps {
			return domain.ErrFeeTooHigh
		}

		return im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
			records = nil
			cfg, err := im.repo.Get(c)
			if err != nil {
				c.WithField("err", err).Error("repo.Get failed")
				return err
			}
			if err := im.repo.SetFeeRate(c, feeRateBps); err != nil {
				c.WithFields(log.Fields{
					"err":        err,
					"feeRateBps": feeRateBps,
				}).Error("repo.SetFeeRate failed")
				return err
			}

			records = append(records, event.NewFeeRateUpdated(event.FeeRateUpdated{
				OldFeeRateBps: cfg.FeeRateBps,
				NewFeeRateBps: feeRateBps,
			}))
			return im.event.Record(c, records...)
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"caller":     caller,
			"feeRateBps": feeRateBps,
		}).Warn("SetFeeRate rejected")
		return err
	}

	im.invalidate(c)
	im.event.Dispatch(c, records...)
	return nil
}

func (im *impl) Withdraw(c ctx.Ctx, caller domain.Address) (uint64, error) {
	var (
		records []event.Record
		amount  uint64
	)
	err := im.guard.Do(c, func(c ctx.Ctx) error {
		if !caller.Equals(im.owner) {
			return domain.ErrUnauthorized
		}

		return im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
			records = nil
			withdrawn, err := im.repo.ResetBalance(c)
			if err != nil {
				c.WithField("err", err).Error("repo.ResetBalance failed")
				return err
			}
			if withdrawn == 0 {
				return domain.ErrNothingToWithdraw
			}
			if err := im.payment.Send(c, im.owner, withdrawn); err != nil {
				c.WithFields(log.Fields{
					"err":    err,
					"amount": withdrawn,
				}).Error("payment.Send failed")
				return xerrors.Errorf("withdraw %d: %w", withdrawn, domain.ErrTransferFailed)
			}
			amount = withdrawn

			records = append(records, event.NewFeeWithdrawn(event.FeeWithdrawn{
				Owner:  im.owner,
				Amount: withdrawn,
			}))
			return im.event.Record(c, records...)
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"caller": caller,
		}).Warn("Withdraw rejected")
		return 0, err
	}

	im.invalidate(c)
	im.event.Dispatch(c, records...)
	return amount, nil
}

func (im *impl) invalidate(c ctx.Ctx) {
	if err := im.cache.Del(c, cacheKeyFeeConfig); err != nil {
		c.WithField("err", err).Warn("cache.Del failed")
	}
}
