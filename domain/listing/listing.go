package listing

import (
	"strconv"
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// Id is assigned from 1 upwards and never reused
type Id uint64

func (i Id) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

type Listing struct {
	Id        Id             `json:"listingId" bson:"_id"`
	AssetRef  domain.Address `json:"assetRef" bson:"assetRef"`
	AssetId   domain.TokenId `json:"assetId" bson:"assetId"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	Price     uint64         `json:"price" bson:"price"`
	Active    bool           `json:"active" bson:"active"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) LowerCase() {
	l.AssetRef = l.AssetRef.ToLower()
	l.Seller = l.Seller.ToLower()
}

type Patchable struct {
	Price     *uint64    `bson:"price,omitempty"`
	Active    *bool      `bson:"active,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

// SellerIndex keeps every listing id a seller ever created, in creation order
type SellerIndex struct {
	Seller     domain.Address `json:"seller" bson:"_id"`
	ListingIds []Id           `json:"listingIds" bson:"listingIds"`
}

// Receipt is the settlement of a successful buy
type Receipt struct {
	ListingId      Id     `json:"listingId"`
	Price          uint64 `json:"price"`
	Fee            uint64 `json:"fee"`
	SellerProceeds uint64 `json:"sellerProceeds"`
	Refund         uint64 `json:"refund"`
}

type FindAllOptions struct {
	Seller *domain.Address
	Active *bool
	Ids    []Id
	Offset *int32
	Limit  *int32
	Sort   *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		seller = seller.ToLower()
		options.Seller = &seller
		return nil
	}
}

func WithActive(active bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Active = &active
		return nil
	}
}

func WithIds(ids ...Id) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Ids = ids
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	// NextId bumps the listing counter, the bump rolls back with the transaction
	NextId(c ctx.Ctx) (Id, error)
	Create(c ctx.Ctx, listing *Listing) error
	FindOne(c ctx.Ctx, id Id) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Listing, error)
	// PatchActive patches the listing only while it is active,
	// returns domain.ErrNotFound otherwise
	PatchActive(c ctx.Ctx, id Id, patchable Patchable) error
}

type SellerIndexRepo interface {
	Append(c ctx.Ctx, seller domain.Address, id Id) error
	FindBySeller(c ctx.Ctx, seller domain.Address) ([]Id, error)
}

type UseCase interface {
	List(c ctx.Ctx, caller, assetRef domain.Address, assetId domain.TokenId, price uint64) (Id, error)
	UpdatePrice(c ctx.Ctx, caller domain.Address, id Id, newPrice uint64) error
	Cancel(c ctx.Ctx, caller domain.Address, id Id) error
	Buy(c ctx.Ctx, caller domain.Address, id Id, payment uint64) (*Receipt, error)

	Get(c ctx.Ctx, id Id) (*Listing, error)
	// ListActive returns ids of active listings ascending
	ListActive(c ctx.Ctx) ([]Id, error)
	// ListingsBySeller returns the seller index as is, sold and canceled
	// listings included, unless activeOnly is set
	ListingsBySeller(c ctx.Ctx, seller domain.Address, activeOnly bool) ([]Id, error)
}
