package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain/keys"
	"github.com/x-xyz/marketplace/service/cache/provider"
	"github.com/x-xyz/marketplace/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type feeConfig struct {
	FeeRateBps uint64 `json:"feeRateBps"`
	Balance    uint64 `json:"balance"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "fee"
		v = feeConfig{250, 25}
		c = &feeConfig{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(time.Second)

	_, _, err = ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSetAndDel() {
	var (
		k = "fee"
		v = feeConfig{100, 0}
		c = &feeConfig{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k     = "fee"
		v     = feeConfig{250, 975}
		c     = &feeConfig{}
		calls = 0
	)
	getter := func() (interface{}, error) {
		calls++
		return &v, nil
	}

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)

	// served from cache
	c = &feeConfig{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterFailed() {
	errGetter := errors.New("getter failed")
	c := &feeConfig{}

	err := ts.im.GetByFunc(mockCtx, "fee", c, func() (interface{}, error) {
		return nil, errGetter
	})
	ts.Equal(errGetter, err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "fee", c))
}

func (ts *testsuite) TestDelMissing() {
	ts.NoError(ts.im.Del(mockCtx, "never-set"))
}

func (ts *testsuite) TestPrefixIsolation() {
	other := New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "other",
		Cache: ts.cache,
	})
	ts.NoError(ts.im.Set(mockCtx, "fee", feeConfig{250, 0}))

	c := &feeConfig{}
	ts.Equal(ErrNotFound, other.Get(mockCtx, "fee", c))
	ts.NoError(other.Del(mockCtx, "fee"))
	ts.NoError(ts.im.Get(mockCtx, "fee", c))
	ts.Equal(uint64(250), c.FeeRateBps)
}
