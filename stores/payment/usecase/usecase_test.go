package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	mPayment "github.com/x-xyz/marketplace/domain/payment/mocks"
)

func TestCredit(t *testing.T) {
	owner := domain.Address("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")
	buyer := domain.Address("0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2")
	c := ctx.Background()

	ledger := &mPayment.Ledger{}
	ledger.On("Credit", mock.Anything, buyer, uint64(500)).Return(nil).Once()
	ledger.On("Credit", mock.Anything, buyer, domain.MaxAmount).Return(domain.ErrBalanceOverflow).Once()
	im := New(owner, ledger)

	assert.Equal(t, domain.ErrUnauthorized, im.Credit(c, buyer, buyer, 500))
	assert.Equal(t, domain.ErrBadParamInput, im.Credit(c, owner, buyer, 0))
	assert.Equal(t, domain.ErrBadParamInput, im.Credit(c, owner, buyer, domain.MaxAmount+1))
	assert.NoError(t, im.Credit(c, owner, buyer, 500))
	assert.Equal(t, domain.ErrBalanceOverflow, im.Credit(c, owner, buyer, domain.MaxAmount))
	ledger.AssertExpectations(t)
}

func TestBalanceOf(t *testing.T) {
	buyer := domain.Address("0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2")
	ledger := &mPayment.Ledger{}
	ledger.On("BalanceOf", mock.Anything, buyer).Return(uint64(42), nil)

	balance, err := New("0x0", ledger).BalanceOf(ctx.Background(), buyer)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), balance)
}
