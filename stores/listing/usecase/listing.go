package usecase

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/ptr"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/event"
	"github.com/x-xyz/marketplace/domain/listing"
)

func (im *impl) List(c ctx.Ctx, caller, assetRef domain.Address, assetId domain.TokenId, price uint64) (listing.Id, error) {
	caller = caller.ToLower()
	assetRef = assetRef.ToLower()
	c = ctx.WithLogFields(c, log.Fields{"caller": caller, "assetRef": assetRef, "assetId": assetId})

	var id listing.Id
	err := im.exclusive(c, func(c ctx.Ctx) ([]event.Record, error) {
		if !validPrice(price) {
			return nil, domain.ErrInvalidPrice
		}

		owner, err := im.registry.OwnerOf(c, assetRef, assetId)
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotOwner
		} else if err != nil {
			c.WithField("err", err).Error("registry.OwnerOf failed")
			return nil, err
		}
		if !owner.Equals(caller) {
			return nil, domain.ErrNotOwner
		}

		if approved, err := im.registry.IsApproved(c, assetRef, caller, im.exchange, assetId); err != nil {
			c.WithField("err", err).Error("registry.IsApproved failed")
			return nil, err
		} else if !approved {
			return nil, domain.ErrNotApproved
		}

		next, err := im.listingRepo.NextId(c)
		if err != nil {
			c.WithField("err", err).Error("listingRepo.NextId failed")
			return nil, err
		}

		now := timeNow().UTC()
		l := &listing.Listing{
			Id:        next,
			AssetRef:  assetRef,
			AssetId:   assetId,
			Seller:    caller,
			Price:     price,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := im.listingRepo.Create(c, l); err != nil {
			c.WithField("err", err).Error("listingRepo.Create failed")
			return nil, err
		}
		if err := im.sellerIndexRepo.Append(c, caller, next); err != nil {
			c.WithField("err", err).Error("sellerIndexRepo.Append failed")
			return nil, err
		}

		id = next
		return []event.Record{event.NewItemListed(event.ItemListed{
			ListingId: uint64(next),
			AssetRef:  assetRef,
			AssetId:   assetId,
			Seller:    caller,
			Price:     price,
		})}, nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "price": price}).Warn("List rejected")
		return 0, err
	}
	return id, nil
}

func (im *impl) UpdatePrice(c ctx.Ctx, caller domain.Address, id listing.Id, newPrice uint64) error {
	c = ctx.WithLogFields(c, log.Fields{"caller": caller, "listingId": id})

	err := im.exclusive(c, func(c ctx.Ctx) ([]event.Record, error) {
		l, err := im.activeListing(c, id)
		if err != nil {
			return nil, err
		}
		if !l.Seller.Equals(caller) {
			return nil, domain.ErrUnauthorized
		}
		if !validPrice(newPrice) {
			return nil, domain.ErrInvalidPrice
		}

		patchable := listing.Patchable{
			Price:     ptr.Uint64(newPrice),
			UpdatedAt: ptr.Time(timeNow().UTC()),
		}
		if err := im.listingRepo.PatchActive(c, id, patchable); err == domain.ErrNotFound {
			return nil, domain.ErrListingInactive
		} else if err != nil {
			c.WithField("err", err).Error("listingRepo.PatchActive failed")
			return nil, err
		}

		return []event.Record{event.NewPriceUpdated(event.PriceUpdated{
			ListingId: uint64(id),
			OldPrice:  l.Price,
			NewPrice:  newPrice,
		})}, nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "newPrice": newPrice}).Warn("UpdatePrice rejected")
		return err
	}
	return nil
}

func (im *impl) Cancel(c ctx.Ctx, caller domain.Address, id listing.Id) error {
	c = ctx.WithLogFields(c, log.Fields{"caller": caller, "listingId": id})

	err := im.exclusive(c, func(c ctx.Ctx) ([]event.Record, error) {
		l, err := im.activeListing(c, id)
		if err != nil {
			return nil, err
		}
		if !l.Seller.Equals(caller) {
			return nil, domain.ErrUnauthorized
		}

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

		return []event.Record{event.NewListingCanceled(event.ListingCanceled{
			ListingId: uint64(id),
			Seller:    l.Seller,
		})}, nil
	})
	if err != nil {
		c.WithField("err", err).Warn("Cancel rejected")
		return err
	}
	return nil
}
