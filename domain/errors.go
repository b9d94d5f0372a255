package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// marketplace rejections, every one of them leaves state untouched
	ErrInvalidPrice            = errors.New("invalid price")
	ErrNotOwner                = errors.New("caller is not the asset owner")
	ErrNotApproved             = errors.New("marketplace is not approved for the asset")
	ErrListingInactive         = errors.New("listing is not active")
	ErrInsufficientPayment     = errors.New("insufficient payment")
	ErrSelfPurchase            = errors.New("seller cannot buy own listing")
	ErrSellerNoLongerOwnsAsset = errors.New("seller no longer owns the asset")
	ErrTransferFailed          = errors.New("transfer failed")
	ErrRefundFailed            = errors.New("refund failed")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrFeeTooHigh              = errors.New("fee too high")
	ErrNothingToWithdraw       = errors.New("nothing to withdraw")
	ErrReentrantCall           = errors.New("reentrant call")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrInvalidAddress          = errors.New("Invalid address")
	ErrInvalidSignature        = errors.New("Invalid signature")
	ErrAssetAlreadyExists      = errors.New("asset already exists")
	ErrBalanceOverflow         = errors.New("balance overflow")
)
