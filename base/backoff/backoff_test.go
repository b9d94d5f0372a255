package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	req.Equal(time.Millisecond, b.NextDuration)

	ctx := context.Background()
	req.NoError(b.Backoff(ctx))
	req.Equal(2*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(ctx))
	// capped
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.Equal(3, b.Count())

	b.Reset()
	req.Equal(0, b.Count())
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestBackoffCanceled(t *testing.T) {
	b := NewLinear(time.Second, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, context.Canceled, b.Backoff(ctx))
	require.Equal(t, 0, b.Count())
}

func TestRetry(t *testing.T) {
	req := require.New(t)
	errBusy := errors.New("busy")

	calls := 0
	err := NewLinear(time.Millisecond, 0).Retry(context.Background(), 5, func() error {
		calls++
		if calls < 3 {
			return errBusy
		}
		return nil
	})
	req.NoError(err)
	req.Equal(3, calls)

	calls = 0
	err = NewLinear(time.Millisecond, 0).Retry(context.Background(), 2, func() error {
		calls++
		return errBusy
	})
	req.Equal(errBusy, err)
	req.Equal(2, calls)
}
