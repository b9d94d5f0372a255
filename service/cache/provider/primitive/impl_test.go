package primitive

import (
	"testing"
	"time"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("", 1).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "treasury:fee"
	v := []byte(`{"feeRateBps":250}`)

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
	r, e := ts.im.cache.Get([]byte(k))
	ts.NoError(e)
	ts.Equal(v, r)

	time.Sleep(time.Second)
	_, e = ts.im.cache.Get([]byte(k))
	ts.Equal(freecache.ErrNotFound, e)
}

func (ts *testsuite) TestGet() {
	cases := []struct {
		Desc string
		Key  string
		Val  string
		Err  error
	}{
		{
			Desc: "Success",
			Key:  "treasury:fee",
			Val:  "250",
		},
		{
			Desc: "Not found",
			Key:  "",
			Err:  provider.ErrNotFound,
		},
	}

	for _, c := range cases {
		if len(c.Key) > 0 {
			ts.NoError(ts.im.cache.Set([]byte(c.Key), []byte(c.Val), 10), c.Desc)
		}

		v, _, e := ts.im.Get(mockCtx, c.Key)
		ts.Equal(c.Val, string(v), c.Desc)
		ts.Equal(c.Err, e, c.Desc)
	}
}

func (ts *testsuite) TestDel() {
	k := "treasury:fee"
	ts.NoError(ts.im.Set(mockCtx, k, []byte("250"), 10*time.Second))
	ts.NoError(ts.im.Del(mockCtx, k))

	_, _, e := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, e)
}

func (ts *testsuite) TestGetReportsTtl() {
	k := "treasury:fee"
	ts.NoError(ts.im.Set(mockCtx, k, []byte("250"), time.Minute))

	_, ttl, e := ts.im.Get(mockCtx, k)
	ts.NoError(e)
	ts.True(ttl > 55*time.Second && ttl <= time.Minute, ttl)

	// no expiry
	ts.NoError(ts.im.Set(mockCtx, k, []byte("250"), 0))
	_, ttl, e = ts.im.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(time.Duration(0), ttl)
}
