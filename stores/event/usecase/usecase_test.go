package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain/event"
	mEvent "github.com/x-xyz/marketplace/domain/event/mocks"
)

var mockCtx = ctx.Background()

type eventSuite struct {
	suite.Suite

	repo  *mEvent.Repo
	sinkA *mEvent.Sink
	sinkB *mEvent.Sink
	im    *impl
}

func TestEventSuite(t *testing.T) {
	suite.Run(t, new(eventSuite))
}

func (s *eventSuite) SetupTest() {
	s.repo = &mEvent.Repo{}
	s.sinkA = &mEvent.Sink{}
	s.sinkB = &mEvent.Sink{}
	s.sinkA.On("Name").Return("a")
	s.sinkB.On("Name").Return("b")
	s.im = New(s.repo, s.sinkA, s.sinkB, NewLogSink()).(*impl)
}

func (s *eventSuite) TestRecord() {
	r := event.NewListingCanceled(event.ListingCanceled{ListingId: 3, Seller: "0xseller"})
	s.repo.On("Insert", mockCtx, r).Return(nil).Once()
	s.NoError(s.im.Record(mockCtx, r))

	s.NoError(s.im.Record(mockCtx))
	s.repo.AssertNumberOfCalls(s.T(), "Insert", 1)

	boom := errors.New("boom")
	s.repo.On("Insert", mockCtx, r).Return(boom).Once()
	s.Equal(boom, s.im.Record(mockCtx, r))
}

func (s *eventSuite) TestDispatchReachesEverySink() {
	r1 := event.NewItemListed(event.ItemListed{ListingId: 1})
	r2 := event.NewItemSold(event.ItemSold{ListingId: 1})

	handledA := make(chan event.Record, 2)
	handledB := make(chan event.Record, 2)
	s.sinkA.On("Handle", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		handledA <- args.Get(1).(event.Record)
	})
	// a failing sink does not stop the others
	s.sinkB.On("Handle", mock.Anything, mock.Anything).Return(errors.New("down")).Run(func(args mock.Arguments) {
		handledB <- args.Get(1).(event.Record)
	})

	s.im.Dispatch(mockCtx, r1, r2)

	s.Equal(r1.Id, receive(s, handledA).Id)
	s.Equal(r2.Id, receive(s, handledA).Id)
	s.Equal(r1.Id, receive(s, handledB).Id)
	s.Equal(r2.Id, receive(s, handledB).Id)
}

func (s *eventSuite) TestDispatchOutlivesCanceledRequest() {
	c, cancel := ctx.WithCancel(mockCtx)
	cancel()

	r := event.NewItemListed(event.ItemListed{ListingId: 1})
	errs := make(chan error, 1)
	s.sinkA.On("Handle", mock.Anything, r).Return(nil).Run(func(args mock.Arguments) {
		errs <- args.Get(0).(ctx.Ctx).Err()
	})
	s.sinkB.On("Handle", mock.Anything, r).Return(nil)

	s.im.Dispatch(c, r)
	select {
	case err := <-errs:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("sink not reached")
	}
}

func (s *eventSuite) TestDispatchWithoutRecords() {
	s.im.Dispatch(mockCtx)
	s.sinkA.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func receive(s *eventSuite, ch chan event.Record) event.Record {
	select {
	case r := <-ch:
		return r
	case <-time.After(time.Second):
		s.FailNow("sink not reached")
	}
	return event.Record{}
}
