package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/marketplace/base/log"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

type privateKey struct{}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "foo", "bar")
	ts.Equal("bar", ctx.Value("foo"))

	ctx = WithValue(ctx, privateKey{}, 42)
	ts.Equal(42, ctx.Value(privateKey{}))
	ts.Equal("bar", ctx.Value("foo"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"a": "b",
		"c": "d",
	})
	ts.Equal("b", ctx.Value("a"))
	ts.Equal("d", ctx.Value("c"))
}

func (ts *testsuite) TestWithLogFieldsKeepsValues() {
	ctx := WithValue(Background(), "a", "b")
	ctx = WithLogFields(ctx, log.Fields{"listingId": 1})
	ts.Equal("b", ctx.Value("a"))
}

func (ts *testsuite) TestFrom() {
	parent := Background()
	inner := context.WithValue(context.Background(), privateKey{}, "session")
	ctx := From(parent, inner)
	ts.Equal("session", ctx.Value(privateKey{}))
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("not canceled")
	}
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	<-ctx.Done()
	ts.Equal("context deadline exceeded", ctx.Err().Error())
}
