package payment

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

type Balance struct {
	Address domain.Address `json:"address" bson:"_id"`
	Amount  uint64         `json:"balance" bson:"balance"`
}

// Channel moves value between principals through the exchange escrow
type Channel interface {
	// Collect moves amount from the payer into escrow,
	// domain.ErrInsufficientFunds when the payer cannot cover it
	Collect(c ctx.Ctx, from domain.Address, amount uint64) error
	// Send pays amount out of escrow
	Send(c ctx.Ctx, to domain.Address, amount uint64) error
	BalanceOf(c ctx.Ctx, address domain.Address) (uint64, error)
}

type Ledger interface {
	Channel
	// Credit funds address from outside the ledger
	Credit(c ctx.Ctx, to domain.Address, amount uint64) error
}

type UseCase interface {
	BalanceOf(c ctx.Ctx, address domain.Address) (uint64, error)
	// Credit is owner only
	Credit(c ctx.Ctx, caller, to domain.Address, amount uint64) error
}
