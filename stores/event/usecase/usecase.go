package usecase

import (
	"context"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/goroutine"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/metrics"
	"github.com/x-xyz/marketplace/domain/event"
)

const (
	sinkWorkers = 4
	sinkTimeout = 10 * time.Second
)

type impl struct {
	repo  event.Repo
	sinks []event.Sink
	met   metrics.Service
}

func New(repo event.Repo, sinks ...event.Sink) event.UseCase {
	return &impl{
		repo:  repo,
		sinks: sinks,
		met:   metrics.New("event"),
	}
}

func (im *impl) Record(c ctx.Ctx, records ...event.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := im.repo.Insert(c, records...); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]event.Record, error) {
	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Dispatch(c ctx.Ctx, records ...event.Record) {
	if len(records) == 0 || len(im.sinks) == 0 {
		return
	}
	// committed records outlive the request
	bg := ctx.From(c, context.Background())
	goroutine.RecoverableGo(func() {
		for _, r := range records {
			im.dispatch(ctx.WithLogFields(bg, log.Fields{"eventId": r.Id, "eventType": r.Type}), r)
		}
	})
}

func (im *impl) dispatch(c ctx.Ctx, r event.Record) {
	b := goroutines.NewBatch(sinkWorkers, goroutines.WithBatchSize(len(im.sinks)))
	defer b.Close()
	for _, sink := range im.sinks {
		s := sink
		b.Queue(func() (interface{}, error) {
			sc, cancel := ctx.WithTimeout(c, sinkTimeout)
			defer cancel()
			if err := s.Handle(sc, r); err != nil {
				return nil, xerrors.Errorf("sink %s: %w", s.Name(), err)
			}
			return nil, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithField("err", err).Error("sink.Handle failed")
			im.met.BumpSum("sink.failed", 1)
		}
	}
}
