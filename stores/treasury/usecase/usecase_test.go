package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/guard"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/event"
	mEvent "github.com/x-xyz/marketplace/domain/event/mocks"
	mDomain "github.com/x-xyz/marketplace/domain/mocks"
	mPayment "github.com/x-xyz/marketplace/domain/payment/mocks"
	"github.com/x-xyz/marketplace/domain/treasury"
	mTreasury "github.com/x-xyz/marketplace/domain/treasury/mocks"
	"github.com/x-xyz/marketplace/service/cache"
	"github.com/x-xyz/marketplace/service/cache/provider/primitive"
)

var mockCtx = ctx.Background()

const (
	owner    = domain.Address("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")
	stranger = domain.Address("0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2")
)

func runTx(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

func isType(typ event.Type) interface{} {
	return mock.MatchedBy(func(r event.Record) bool { return r.Type == typ })
}

type treasurySuite struct {
	suite.Suite

	repo    *mTreasury.Repo
	payment *mPayment.Channel
	event   *mEvent.UseCase
	tx      *mDomain.Transactor
	guard   guard.Guard
	im      *impl
}

func TestTreasurySuite(t *testing.T) {
	suite.Run(t, new(treasurySuite))
}

func (s *treasurySuite) SetupTest() {
	s.repo = &mTreasury.Repo{}
	s.payment = &mPayment.Channel{}
	s.event = &mEvent.UseCase{}
	s.tx = &mDomain.Transactor{}
	s.guard = guard.NewLocal("exchange")
	s.tx.On("RunWithTransaction", mock.Anything, mock.Anything).Return(runTx)
	s.im = New(&TreasuryUseCaseCfg{
		Owner:      owner,
		Repo:       s.repo,
		Payment:    s.payment,
		Event:      s.event,
		Guard:      s.guard,
		Transactor: s.tx,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "treasury",
			Cache: primitive.NewPrimitive("test", 1),
		}),
	}).(*impl)
}

func (s *treasurySuite) TestSetFeeRateOwnerOnly() {
	// rejected before the rate is looked at
	s.Equal(domain.ErrUnauthorized, s.im.SetFeeRate(mockCtx, stranger, 5000))
	s.Equal(domain.ErrUnauthorized, s.im.SetFeeRate(mockCtx, stranger, 100))
	s.repo.AssertNotCalled(s.T(), "SetFeeRate", mock.Anything, mock.Anything)
	s.tx.AssertNotCalled(s.T(), "RunWithTransaction", mock.Anything, mock.Anything)
}

func (s *treasurySuite) TestSetFeeRateTooHigh() {
	s.Equal(domain.ErrFeeTooHigh, s.im.SetFeeRate(mockCtx, owner, treasury.MaxFeeRateBps+1))
	s.Equal(domain.ErrFeeTooHigh, s.im.SetFeeRate(mockCtx, owner, 1500))
	s.repo.AssertNotCalled(s.T(), "SetFeeRate", mock.Anything, mock.Anything)
}

func (s *treasurySuite) TestSetFeeRate() {
	s.repo.On("Get", mock.Anything).Return(&treasury.FeeConfig{FeeRateBps: 250}, nil)
	s.repo.On("SetFeeRate", mock.Anything, treasury.MaxFeeRateBps).Return(nil).Once()
	s.event.On("Record", mock.Anything, mock.MatchedBy(func(r event.Record) bool {
		return r.FeeRateUpdated != nil && r.FeeRateUpdated.OldFeeRateBps == 250 && r.FeeRateUpdated.NewFeeRateBps == 1000
	})).Return(nil).Once()
	s.event.On("Dispatch", mock.Anything, isType(event.TypeFeeRateUpdated)).Once()

	// owner address compares case insensitively
	s.NoError(s.im.SetFeeRate(mockCtx, domain.Address("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"), treasury.MaxFeeRateBps))
	s.event.AssertExpectations(s.T())
}

func (s *treasurySuite) TestSetFeeRateRollback() {
	boom := errors.New("boom")
	s.repo.On("Get", mock.Anything).Return(&treasury.FeeConfig{FeeRateBps: 250}, nil)
	s.repo.On("SetFeeRate", mock.Anything, uint64(100)).Return(boom).Once()

	s.Equal(boom, s.im.SetFeeRate(mockCtx, owner, 100))
	s.event.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
	s.event.AssertNotCalled(s.T(), "Dispatch", mock.Anything, mock.Anything)
}

func (s *treasurySuite) TestWithdraw() {
	s.Equal(uint64(0), mustWithdrawErr(s, stranger, domain.ErrUnauthorized))
	s.repo.AssertNotCalled(s.T(), "ResetBalance", mock.Anything)

	s.repo.On("ResetBalance", mock.Anything).Return(uint64(0), nil).Once()
	mustWithdrawErr(s, owner, domain.ErrNothingToWithdraw)
	s.payment.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything, mock.Anything)

	s.repo.On("ResetBalance", mock.Anything).Return(uint64(55), nil).Once()
	s.payment.On("Send", mock.Anything, owner, uint64(55)).Return(nil).Once()
	s.event.On("Record", mock.Anything, mock.MatchedBy(func(r event.Record) bool {
		return r.FeeWithdrawn != nil && r.FeeWithdrawn.Amount == 55 && r.FeeWithdrawn.Owner == owner
	})).Return(nil).Once()
	s.event.On("Dispatch", mock.Anything, isType(event.TypeFeeWithdrawn)).Once()

	amount, err := s.im.Withdraw(mockCtx, owner)
	s.NoError(err)
	s.Equal(uint64(55), amount)
	s.payment.AssertExpectations(s.T())
	s.event.AssertExpectations(s.T())
}

func (s *treasurySuite) TestWithdrawSendFailed() {
	s.repo.On("ResetBalance", mock.Anything).Return(uint64(10), nil).Once()
	s.payment.On("Send", mock.Anything, owner, uint64(10)).Return(domain.ErrInsufficientFunds).Once()

	_, err := s.im.Withdraw(mockCtx, owner)
	s.True(errors.Is(err, domain.ErrTransferFailed))
	s.event.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
}

func (s *treasurySuite) TestReentrantCall() {
	err := s.guard.Do(mockCtx, func(c ctx.Ctx) error {
		return s.im.SetFeeRate(c, owner, 100)
	})
	s.Equal(domain.ErrReentrantCall, err)

	err = s.guard.Do(mockCtx, func(c ctx.Ctx) error {
		_, err := s.im.Withdraw(c, owner)
		return err
	})
	s.Equal(domain.ErrReentrantCall, err)
}

func (s *treasurySuite) TestFeeConfigCached() {
	s.repo.On("Get", mock.Anything).Return(&treasury.FeeConfig{FeeRateBps: 250, Balance: 7}, nil).Twice()
	s.repo.On("AddBalance", mock.Anything, uint64(3)).Return(nil).Once()

	for i := 0; i < 2; i++ {
		cfg, err := s.im.FeeConfig(mockCtx)
		s.Require().NoError(err)
		s.Equal(uint64(250), cfg.FeeRateBps)
		s.Equal(uint64(7), cfg.Balance)
	}
	s.repo.AssertNumberOfCalls(s.T(), "Get", 1)

	// accrual drops the cached copy
	s.NoError(s.im.Accrue(mockCtx, 3))
	s.NoError(s.im.Accrue(mockCtx, 0))
	_, err := s.im.FeeConfig(mockCtx)
	s.NoError(err)
	s.repo.AssertNumberOfCalls(s.T(), "Get", 2)
	s.repo.AssertNumberOfCalls(s.T(), "AddBalance", 1)
}

func (s *treasurySuite) TestFeeRate() {
	s.repo.On("Get", mock.Anything).Return(&treasury.FeeConfig{FeeRateBps: 250}, nil).Once()
	bps, err := s.im.FeeRate(mockCtx)
	s.NoError(err)
	s.Equal(uint64(250), bps)
}

func mustWithdrawErr(s *treasurySuite, caller domain.Address, want error) uint64 {
	amount, err := s.im.Withdraw(mockCtx, caller)
	s.Equal(want, err)
	return amount
}
