package usecase

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/asset"
)

type AssetUseCaseCfg struct {
	Owner      domain.Address
	Exchange   domain.Address
	Ledger     asset.Ledger
	Transactor domain.Transactor
}

type impl struct {
	owner      domain.Address
	exchange   domain.Address
	ledger     asset.Ledger
	transactor domain.Transactor
}

func New(cfg *AssetUseCaseCfg) asset.UseCase {
	return &impl{
		owner:      cfg.Owner.ToLower(),
		exchange:   cfg.Exchange.ToLower(),
		ledger:     cfg.Ledger,
		transactor: cfg.Transactor,
	}
}

func (im *impl) Mint(c ctx.Ctx, caller, assetRef domain.Address, assetId domain.TokenId, to domain.Address) error {
	if !caller.Equals(im.owner) {
		return domain.ErrUnauthorized
	}
	if assetId == "" || to.IsEmpty() {
		return domain.ErrBadParamInput
	}
	if err := im.ledger.Mint(c, assetRef, assetId, to); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"assetRef": assetRef,
			"assetId":  assetId,
			"to":       to,
		}).Error("ledger.Mint failed")
		return err
	}
	return nil
}

func (im *impl) Get(c ctx.Ctx, assetRef domain.Address, assetId domain.TokenId) (*asset.Asset, error) {
	owner, err := im.ledger.OwnerOf(c, assetRef, assetId)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).Error("ledger.OwnerOf failed")
		}
		return nil, err
	}
	approved, err := im.ledger.IsApproved(c, assetRef, owner, im.exchange, assetId)
	if err != nil {
		c.WithField("err", err).Error("ledger.IsApproved failed")
		return nil, err
	}

	res := &asset.Asset{
		Id:    asset.Id{AssetRef: assetRef.ToLower(), AssetId: assetId},
		Owner: owner,
	}
	if approved {
		res.Approved = im.exchange
	}
	return res, nil
}

func (im *impl) ApproveExchange(c ctx.Ctx, caller, assetRef domain.Address, assetId domain.TokenId, approved bool) error {
	err := im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
		if assetId == "" {
			return im.ledger.SetApprovalForAll(c, assetRef, caller, im.exchange, approved)
		}

		owner, err := im.ledger.OwnerOf(c, assetRef, assetId)
		if err == domain.ErrNotFound {
			return domain.ErrNotOwner
		} else if err != nil {
			return err
		}
		if !owner.Equals(caller) {
			return domain.ErrNotOwner
		}
		return im.ledger.SetApproval(c, assetRef, caller, im.exchange, assetId, approved)
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"caller":   caller,
			"assetRef": assetRef,
			"assetId":  assetId,
		}).Warn("ApproveExchange failed")
		return err
	}
	return nil
}
