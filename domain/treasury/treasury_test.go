package treasury

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFee(t *testing.T) {
	cases := []struct {
		desc     string
		price    uint64
		bps      uint64
		fee      uint64
		proceeds uint64
	}{
		{"default rate", 1000, 250, 25, 975},
		{"floored", 999, 250, 24, 975},
		{"zero rate", 1000, 0, 0, 1000},
		{"cap", 1000, MaxFeeRateBps, 100, 900},
		{"tiny price", 1, 1000, 0, 1},
		{"max amount", math.MaxInt64, 1000, 922337203685477580, 8301034833169298227},
	}

	for _, c := range cases {
		fee, proceeds := ComputeFee(c.price, c.bps)
		assert.Equal(t, c.fee, fee, c.desc)
		assert.Equal(t, c.proceeds, proceeds, c.desc)
		assert.Equal(t, c.price, fee+proceeds, c.desc)
	}
}
