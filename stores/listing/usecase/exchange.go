package usecase

import (
	"errors"

	"golang.org/x/xerrors"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/ptr"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/event"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/domain/treasury"
)

// Buy settles a listing: payment is escrowed, the listing closed, the asset
// moved to the buyer, proceeds paid to the seller, the excess refunded and
// the fee accrued. Any failure rolls every step back.
func (im *impl) Buy(c ctx.Ctx, caller domain.Address, id listing.Id, payment uint64) (*listing.Receipt, error) {
	caller = caller.ToLower()
	c = ctx.WithLogFields(c, log.Fields{"caller": caller, "listingId": id})

	var receipt *listing.Receipt
	err := im.exclusive(c, func(c ctx.Ctx) ([]event.Record, error) {
		receipt = nil
		l, err := im.activeListing(c, id)
		if err != nil {
			return nil, err
		}
		if payment < l.Price {
			return nil, domain.ErrInsufficientPayment
		}
		if l.Seller.Equals(caller) {
			return nil, domain.ErrSelfPurchase
		}

		owner, err := im.registry.OwnerOf(c, l.AssetRef, l.AssetId)
		if err != nil && err != domain.ErrNotFound {
			c.WithField("err", err).Error("registry.OwnerOf failed")
			return nil, err
		}
		if err == domain.ErrNotFound || !owner.Equals(l.Seller) {
			return nil, domain.ErrSellerNoLongerOwnsAsset
		}

		if err := im.payment.Collect(c, caller, payment); err != nil {
			c.WithFields(log.Fields{"err": err, "payment": payment}).Warn("payment.Collect failed")
			if errors.Is(err, domain.ErrInsufficientFunds) {
				return nil, err
			}
			return nil, xerrors.Errorf("collect payment: %w", err)
		}

		// the listing closes before anything leaves escrow
		patchable := listing.Patchable{
			Active:    ptr.Bool(false),
			UpdatedAt: ptr.Time(timeNow().UTC()),
		}
		if err := im.listingRepo.PatchActive(c, id, patchable); err == domain.ErrNotFound {
			return nil, domain.ErrListingInactive
		} else if err != nil {
			c.WithField("err", err).Error("listingRepo.PatchActive failed")
			return nil, err
		}

		feeRate, err := im.treasury.FeeRate(c)
		if err != nil {
			c.WithField("err", err).Error("treasury.FeeRate failed")
			return nil, err
		}
		fee, proceeds := treasury.ComputeFee(l.Price, feeRate)

		if err := im.registry.Transfer(c, l.AssetRef, im.exchange, l.Seller, caller, l.AssetId); err != nil {
			c.WithField("err", err).Error("registry.Transfer failed")
			return nil, xerrors.Errorf("asset %s/%s: %v: %w", l.AssetRef, l.AssetId, err, domain.ErrTransferFailed)
		}

		if err := im.payment.Send(c, l.Seller, proceeds); err != nil {
			c.WithFields(log.Fields{"err": err, "proceeds": proceeds}).Error("payment.Send proceeds failed")
			return nil, xerrors.Errorf("proceeds %d: %v: %w", proceeds, err, domain.ErrTransferFailed)
		}

		refund := payment - l.Price
		if refund > 0 {
			if err := im.payment.Send(c, caller, refund); err != nil {
				c.WithFields(log.Fields{"err": err, "refund": refund}).Error("payment.Send refund failed")
				return nil, xerrors.Errorf("refund %d: %v: %w", refund, err, domain.ErrRefundFailed)
			}
		}

		if err := im.treasury.Accrue(c, fee); err != nil {
			c.WithFields(log.Fields{"err": err, "fee": fee}).Error("treasury.Accrue failed")
			return nil, err
		}

		receipt = &listing.Receipt{
			ListingId:      id,
			Price:          l.Price,
			Fee:            fee,
			SellerProceeds: proceeds,
			Refund:         refund,
		}
		return []event.Record{event.NewItemSold(event.ItemSold{
			ListingId: uint64(id),
			AssetRef:  l.AssetRef,
			AssetId:   l.AssetId,
			Seller:    l.Seller,
			Buyer:     caller,
			Price:     l.Price,
		})}, nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "payment": payment}).Warn("Buy rejected")
		return nil, err
	}

	im.met.BumpSum("sold", 1)
	im.met.BumpSum("volume", float64(receipt.Price))
	return receipt, nil
}
