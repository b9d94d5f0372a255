package usecase

import (
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/guard"
	"github.com/x-xyz/marketplace/base/metrics"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/asset"
	"github.com/x-xyz/marketplace/domain/event"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/domain/payment"
	"github.com/x-xyz/marketplace/domain/treasury"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	// Exchange is the operator address sellers approve, it also holds escrow
	Exchange        domain.Address
	ListingRepo     listing.Repo
	SellerIndexRepo listing.SellerIndexRepo
	Registry        asset.Registry
	Payment         payment.Channel
	Treasury        treasury.UseCase
	Event           event.UseCase
	Guard           guard.Guard
	Transactor      domain.Transactor
}

type impl struct {
	exchange        domain.Address
	listingRepo     listing.Repo
	sellerIndexRepo listing.SellerIndexRepo
	registry        asset.Registry
	payment         payment.Channel
	treasury        treasury.UseCase
	event           event.UseCase
	guard           guard.Guard
	transactor      domain.Transactor
	met             metrics.Service
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		exchange:        cfg.Exchange.ToLower(),
		listingRepo:     cfg.ListingRepo,
		sellerIndexRepo: cfg.SellerIndexRepo,
		registry:        cfg.Registry,
		payment:         cfg.Payment,
		treasury:        cfg.Treasury,
		event:           cfg.Event,
		guard:           cfg.Guard,
		transactor:      cfg.Transactor,
		met:             metrics.New("listing"),
	}
}

// exclusive runs fn under the guard in one transaction, the records fn
// returns are stored with it and dispatched once committed
func (im *impl) exclusive(c ctx.Ctx, fn func(c ctx.Ctx) ([]event.Record, error)) error {
	var records []event.Record
	err := im.guard.Do(c, func(c ctx.Ctx) error {
		return im.transactor.RunWithTransaction(c, func(c ctx.Ctx) error {
			records = nil
			rs, err := fn(c)
			if err != nil {
				return err
			}
			if err := im.event.Record(c, rs...); err != nil {
				return err
			}
			records = rs
			return nil
		})
	})
	if err != nil {
		return err
	}

	im.event.Dispatch(c, records...)
	return nil
}

// activeListing loads a listing that can still be traded
func (im *impl) activeListing(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	l, err := im.listingRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrListingInactive
	} else if err != nil {
		c.WithField("err", err).Error("listingRepo.FindOne failed")
		return nil, err
	}
	if !l.Active {
		return nil, domain.ErrListingInactive
	}
	return l, nil
}

func validPrice(price uint64) bool {
	return price > 0 && price <= domain.MaxAmount
}
