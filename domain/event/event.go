package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

type Type string

const (
	TypeItemListed      Type = "ItemListed"
	TypeItemSold        Type = "ItemSold"
	TypeListingCanceled Type = "ListingCanceled"
	TypePriceUpdated    Type = "PriceUpdated"
	TypeFeeRateUpdated  Type = "FeeRateUpdated"
	TypeFeeWithdrawn    Type = "FeeWithdrawn"
)

type ItemListed struct {
	ListingId uint64         `json:"listingId" bson:"listingId"`
	AssetRef  domain.Address `json:"assetRef" bson:"assetRef"`
	AssetId   domain.TokenId `json:"assetId" bson:"assetId"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	Price     uint64         `json:"price" bson:"price"`
}

type ItemSold struct {
	ListingId uint64         `json:"listingId" bson:"listingId"`
	AssetRef  domain.Address `json:"assetRef" bson:"assetRef"`
	AssetId   domain.TokenId `json:"assetId" bson:"assetId"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	Buyer     domain.Address `json:"buyer" bson:"buyer"`
	Price     uint64         `json:"price" bson:"price"`
}

type ListingCanceled struct {
	ListingId uint64         `json:"listingId" bson:"listingId"`
	Seller    domain.Address `json:"seller" bson:"seller"`
}

type PriceUpdated struct {
	ListingId uint64 `json:"listingId" bson:"listingId"`
	OldPrice  uint64 `json:"oldPrice" bson:"oldPrice"`
	NewPrice  uint64 `json:"newPrice" bson:"newPrice"`
}

type FeeRateUpdated struct {
	OldFeeRateBps uint64 `json:"oldFeeRateBps" bson:"oldFeeRateBps"`
	NewFeeRateBps uint64 `json:"newFeeRateBps" bson:"newFeeRateBps"`
}

type FeeWithdrawn struct {
	Owner  domain.Address `json:"owner" bson:"owner"`
	Amount uint64         `json:"amount" bson:"amount"`
}

// Record is one entry of the event log, exactly one payload is set
type Record struct {
	Id        string    `json:"id" bson:"_id"`
	Type      Type      `json:"type" bson:"type"`
	ListingId uint64    `json:"listingId,omitempty" bson:"listingId,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	ItemListed      *ItemListed      `json:"itemListed,omitempty" bson:"itemListed,omitempty"`
	ItemSold        *ItemSold        `json:"itemSold,omitempty" bson:"itemSold,omitempty"`
	ListingCanceled *ListingCanceled `json:"listingCanceled,omitempty" bson:"listingCanceled,omitempty"`
	PriceUpdated    *PriceUpdated    `json:"priceUpdated,omitempty" bson:"priceUpdated,omitempty"`
	FeeRateUpdated  *FeeRateUpdated  `json:"feeRateUpdated,omitempty" bson:"feeRateUpdated,omitempty"`
	FeeWithdrawn    *FeeWithdrawn    `json:"feeWithdrawn,omitempty" bson:"feeWithdrawn,omitempty"`
}

var timeNow = time.Now

func newRecord(typ Type, listingId uint64) Record {
	return Record{
		Id:        uuid.NewString(),
		Type:      typ,
		ListingId: listingId,
		CreatedAt: timeNow().UTC(),
	}
}

func NewItemListed(p ItemListed) Record {
	r := newRecord(TypeItemListed, p.ListingId)
	r.ItemListed = &p
	return r
}

func NewItemSold(p ItemSold) Record {
	r := newRecord(TypeItemSold, p.ListingId)
	r.ItemSold = &p
	return r
}

func NewListingCanceled(p ListingCanceled) Record {
	r := newRecord(TypeListingCanceled, p.ListingId)
	r.ListingCanceled = &p
	return r
}

func NewPriceUpdated(p PriceUpdated) Record {
	r := newRecord(TypePriceUpdated, p.ListingId)
	r.PriceUpdated = &p
	return r
}

func NewFeeRateUpdated(p FeeRateUpdated) Record {
	r := newRecord(TypeFeeRateUpdated, 0)
	r.FeeRateUpdated = &p
	return r
}

func NewFeeWithdrawn(p FeeWithdrawn) Record {
	r := newRecord(TypeFeeWithdrawn, 0)
	r.FeeWithdrawn = &p
	return r
}

type FindAllOptions struct {
	ListingId *uint64
	Type      *Type
	Offset    *int32
	Limit     *int32
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

func WithListingId(id uint64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ListingId = &id
		return nil
	}
}

func WithType(typ Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &typ
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

type Repo interface {
	Insert(c ctx.Ctx, records ...Record) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Record, error)
}

// Sink consumes committed events
type Sink interface {
	Name() string
	Handle(c ctx.Ctx, record Record) error
}

type UseCase interface {
	// Record appends to the event log inside the caller's transaction
	Record(c ctx.Ctx, records ...Record) error
	// Dispatch hands committed records to the sinks without blocking the caller
	Dispatch(c ctx.Ctx, records ...Record)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Record, error)
}
