package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/treasury"
	"github.com/x-xyz/marketplace/service/query"
)

var mockCtx = ctx.Background()

type treasurySuite struct {
	suite.Suite

	client *mongoclient.Client
	im     *impl
}

func TestTreasurySuite(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}
	suite.Run(t, new(treasurySuite))
}

func (s *treasurySuite) SetupSuite() {
	s.client = mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:                os.Getenv("MONGO_URI"),
		DBName:             "test_treasury",
		PoolSizeMultiplier: 2,
	})
	s.im = New(query.New(s.client)).(*impl)
}

func (s *treasurySuite) SetupTest() {
	s.Require().NoError(s.client.Database(s.client.DbName).Collection(string(domain.TableTreasury)).Drop(mockCtx))
}

func (s *treasurySuite) TestInitKeepsExisting() {
	_, err := s.im.Get(mockCtx)
	s.Equal(domain.ErrNotFound, err)

	s.NoError(s.im.Init(mockCtx, treasury.DefaultFeeRateBps))
	s.NoError(s.im.SetFeeRate(mockCtx, 100))
	s.NoError(s.im.Init(mockCtx, treasury.DefaultFeeRateBps))

	cfg, err := s.im.Get(mockCtx)
	s.Require().NoError(err)
	s.Equal(uint64(100), cfg.FeeRateBps)
	s.Equal(uint64(0), cfg.Balance)
}

func (s *treasurySuite) TestBalance() {
	s.NoError(s.im.Init(mockCtx, treasury.DefaultFeeRateBps))
	s.NoError(s.im.AddBalance(mockCtx, 25))
	s.NoError(s.im.AddBalance(mockCtx, 30))

	withdrawn, err := s.im.ResetBalance(mockCtx)
	s.NoError(err)
	s.Equal(uint64(55), withdrawn)

	withdrawn, err = s.im.ResetBalance(mockCtx)
	s.NoError(err)
	s.Equal(uint64(0), withdrawn)
}

func (s *treasurySuite) TestAddBalanceOverflow() {
	s.NoError(s.im.Init(mockCtx, treasury.DefaultFeeRateBps))
	s.NoError(s.im.AddBalance(mockCtx, domain.MaxAmount))
	s.Equal(domain.ErrBalanceOverflow, s.im.AddBalance(mockCtx, 1))
}
