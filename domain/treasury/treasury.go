package treasury

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

const (
	// MaxFeeRateBps caps the fee at 10%
	MaxFeeRateBps = uint64(1000)

	DefaultFeeRateBps = uint64(250)
)

// FeeConfig is the process wide treasury singleton
type FeeConfig struct {
	FeeRateBps uint64    `json:"feeRateBps" bson:"feeRateBps"`
	Balance    uint64    `json:"balance" bson:"balance"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ComputeFee splits price into fee = floor(price*bps/10000) and the seller
// proceeds, fee + proceeds == price always holds.
func ComputeFee(price, feeRateBps uint64) (fee, proceeds uint64) {
	fee = decimal.NewFromInt(int64(feeRateBps)).
		Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(price), 0)).
		Div(decimal.NewFromInt(domain.BasisPoints)).
		Floor().
		BigInt().
		Uint64()
	return fee, price - fee
}

type Repo interface {
	// Init creates the singleton with feeRateBps when missing
	Init(c ctx.Ctx, feeRateBps uint64) error
	Get(c ctx.Ctx) (*FeeConfig, error)
	SetFeeRate(c ctx.Ctx, feeRateBps uint64) error
	AddBalance(c ctx.Ctx, amount uint64) error
	// ResetBalance zeroes the balance and returns what it held
	ResetBalance(c ctx.Ctx) (uint64, error)
}

type UseCase interface {
	FeeConfig(c ctx.Ctx) (*FeeConfig, error)
	// SetFeeRate and Withdraw are owner only
	SetFeeRate(c ctx.Ctx, caller domain.Address, feeRateBps uint64) error
	Withdraw(c ctx.Ctx, caller domain.Address) (uint64, error)
	// Accrue adds a sale fee, it joins the caller's transaction
	Accrue(c ctx.Ctx, fee uint64) error
	// FeeRate reads the rate inside the caller's transaction
	FeeRate(c ctx.Ctx) (uint64, error)
	Owner() domain.Address
}
