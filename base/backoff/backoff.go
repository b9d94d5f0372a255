package backoff

import (
	"context"
	"math"
	"time"
)

type Strategy interface {
	GetBackoffDuration(count int, start time.Duration, last time.Duration) time.Duration
}

type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	strategy     Strategy
}

func NewBackoff(strategy Strategy, start time.Duration, limit time.Duration) *Backoff {
	backoff := Backoff{strategy: strategy, start: start, limit: limit}
	backoff.Reset()
	return &backoff
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.getNextDuration()
}

// Count is the number of completed waits since the last Reset
func (b *Backoff) Count() int {
	return b.count
}

// Backoff sleeps NextDuration, returns ctx.Err() if ctx ends first
func (b *Backoff) Backoff(ctx context.Context) error {
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	b.count++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.getNextDuration()
	return nil
}

// Retry calls fn until it succeeds, attempts is exhausted or ctx ends.
// attempts <= 0 retries forever.
func (b *Backoff) Retry(ctx context.Context, attempts int, fn func() error) error {
	var err error
	for i := 0; attempts <= 0 || i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempts > 0 && i == attempts-1 {
			break
		}
		if werr := b.Backoff(ctx); werr != nil {
			return werr
		}
	}
	return err
}

func (b *Backoff) getNextDuration() time.Duration {
	backoff := b.strategy.GetBackoffDuration(b.count, b.start, b.LastDuration)
	if b.limit > 0 && backoff > b.limit {
		backoff = b.limit
	}
	return backoff
}

type exponential struct{}

func (exponential) GetBackoffDuration(backoffCount int, start time.Duration, lastBackoff time.Duration) time.Duration {
	period := int64(math.Pow(2, float64(backoffCount)))
	return time.Duration(period) * start
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(exponential{}, start, limit)
}

type linear struct{}

func (linear) GetBackoffDuration(backoffCount int, start time.Duration, lastBackoff time.Duration) time.Duration {
	return time.Duration(backoffCount+1) * start
}

func NewLinear(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(linear{}, start, limit)
}
