package domain

import (
	"math"
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type Table string

const (
	TableListings       Table = "listings"
	TableSellerListings Table = "seller_listings"
	TableCounters       Table = "counters"
	TableTreasury       Table = "treasury"
	TableAssets         Table = "assets"
	TableAssetApprovals Table = "asset_approvals"
	TableBalances       Table = "balances"
	TableEvents         Table = "marketplace_events"
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// MaxAmount is the largest amount the storage layer can hold, amounts are
// persisted as int64.
const MaxAmount = uint64(math.MaxInt64)

// BasisPoints is the fee scale, 10000 = 100%
const BasisPoints = 10000
