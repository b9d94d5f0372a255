package usecase

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain/event"
)

type logSink struct{}

// NewLogSink writes every committed event to the service log
func NewLogSink() event.Sink {
	return logSink{}
}

func (logSink) Name() string {
	return "log"
}

func (logSink) Handle(c ctx.Ctx, r event.Record) error {
	c.WithFields(log.Fields{
		"eventId":   r.Id,
		"eventType": r.Type,
		"listingId": r.ListingId,
		"record":    r,
	}).Info("marketplace event")
	return nil
}
