package usecase

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
)

func (im *impl) Get(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	l, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).Error("listingRepo.FindOne failed")
		}
		return nil, err
	}
	return l, nil
}

func (im *impl) ListActive(c ctx.Ctx) ([]listing.Id, error) {
	ls, err := im.listingRepo.FindAll(c, listing.WithActive(true), listing.WithSort("_id"))
	if err != nil {
		c.WithField("err", err).Error("listingRepo.FindAll failed")
		return nil, err
	}
	res := make([]listing.Id, 0, len(ls))
	for _, l := range ls {
		res = append(res, l.Id)
	}
	return res, nil
}

func (im *impl) ListingsBySeller(c ctx.Ctx, seller domain.Address, activeOnly bool) ([]listing.Id, error) {
	ids, err := im.sellerIndexRepo.FindBySeller(c, seller.ToLower())
	if err != nil {
		c.WithField("err", err).Error("sellerIndexRepo.FindBySeller failed")
		return nil, err
	}
	if !activeOnly || len(ids) == 0 {
		return ids, nil
	}

	ls, err := im.listingRepo.FindAll(c, listing.WithIds(ids...), listing.WithActive(true))
	if err != nil {
		c.WithField("err", err).Error("listingRepo.FindAll failed")
		return nil, err
	}
	active := make(map[listing.Id]bool, len(ls))
	for _, l := range ls {
		active[l.Id] = true
	}

	// keep the index order
	res := make([]listing.Id, 0, len(ls))
	for _, id := range ids {
		if active[id] {
			res = append(res, id)
		}
	}
	return res, nil
}
