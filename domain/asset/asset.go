package asset

import (
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

type Id struct {
	AssetRef domain.Address `json:"assetRef" bson:"assetRef"`
	AssetId  domain.TokenId `json:"assetId" bson:"assetId"`
}

type Asset struct {
	Id    `bson:",inline"`
	Owner domain.Address `json:"owner" bson:"owner"`
	// Approved may transfer this single asset, cleared on every transfer
	Approved  domain.Address `json:"approved" bson:"approved"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// OperatorApproval grants operator transfer authority over every asset of
// AssetRef owned by Owner
type OperatorApproval struct {
	Key      string         `json:"-" bson:"_id"`
	AssetRef domain.Address `json:"assetRef" bson:"assetRef"`
	Owner    domain.Address `json:"owner" bson:"owner"`
	Operator domain.Address `json:"operator" bson:"operator"`
	Approved bool           `json:"approved" bson:"approved"`
}

// Registry tracks ownership and performs transfers
type Registry interface {
	OwnerOf(c ctx.Ctx, assetRef domain.Address, assetId domain.TokenId) (domain.Address, error)
	// IsApproved reports a blanket approval of owner's assetRef assets or a
	// single approval of assetId
	IsApproved(c ctx.Ctx, assetRef, owner, operator domain.Address, assetId domain.TokenId) (bool, error)
	// Transfer moves the asset from -> to on behalf of operator
	Transfer(c ctx.Ctx, assetRef, operator, from, to domain.Address, assetId domain.TokenId) error
}

// Ledger is the registry plus the administration the service exposes
type Ledger interface {
	Registry
	Mint(c ctx.Ctx, assetRef domain.Address, assetId domain.TokenId, owner domain.Address) error
	SetApproval(c ctx.Ctx, assetRef, owner, operator domain.Address, assetId domain.TokenId, approved bool) error
	SetApprovalForAll(c ctx.Ctx, assetRef, owner, operator domain.Address, approved bool) error
}

type UseCase interface {
	// Mint is owner only
	Mint(c ctx.Ctx, caller, assetRef domain.Address, assetId domain.TokenId, to domain.Address) error
	Get(c ctx.Ctx, assetRef domain.Address, assetId domain.TokenId) (*Asset, error)
	// ApproveExchange grants or revokes the exchange's authority over the
	// caller's asset, or all of the caller's assetRef assets when assetId is empty
	ApproveExchange(c ctx.Ctx, caller, assetRef domain.Address, assetId domain.TokenId, approved bool) error
}
