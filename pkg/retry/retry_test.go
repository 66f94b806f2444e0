package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idlekit/pkg/netstatus"
	"github.com/dmitrymomot/idlekit/pkg/retry"
)

var errTransient = errors.New("transient failure")

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	},
		retry.WithMaxAttempts(5),
		retry.WithBaseDelay(time.Millisecond),
		retry.WithMaxDelay(5*time.Millisecond),
	)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errTransient
	},
		retry.WithMaxAttempts(3),
		retry.WithBaseDelay(time.Millisecond),
		retry.WithMaxDelay(5*time.Millisecond),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, retry.ErrMaxAttemptsReached)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, calls)
}

func TestDo_FailsFastWhenOffline(t *testing.T) {
	t.Parallel()

	provider := netstatus.NewManualProvider()
	provider.SetOffline(true)

	calls := 0
	err := retry.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errTransient
	}, retry.WithNetstatus(provider))

	require.ErrorIs(t, err, retry.ErrOffline)
	assert.Equal(t, 0, calls)
}

func TestDo_OfflineMidRunKeepsLastError(t *testing.T) {
	t.Parallel()

	provider := netstatus.NewManualProvider()

	calls := 0
	err := retry.Do(context.Background(), func(ctx context.Context) error {
		calls++
		provider.SetOffline(true)
		return errTransient
	},
		retry.WithNetstatus(provider),
		retry.WithMaxAttempts(5),
		retry.WithBaseDelay(time.Millisecond),
	)

	require.ErrorIs(t, err, retry.ErrOffline)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

func TestDo_RetryIfShortCircuits(t *testing.T) {
	t.Parallel()

	errPermanent := errors.New("permanent failure")

	calls := 0
	err := retry.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errPermanent
	},
		retry.WithMaxAttempts(5),
		retry.WithRetryIf(func(err error) bool {
			return !errors.Is(err, errPermanent)
		}),
	)

	require.ErrorIs(t, err, errPermanent)
	assert.NotErrorIs(t, err, retry.ErrMaxAttemptsReached)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	start := time.Now()
	err := retry.Do(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return errTransient
	},
		retry.WithMaxAttempts(5),
		retry.WithBaseDelay(10*time.Second),
		retry.WithMaxDelay(10*time.Second),
	)

	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), 5*time.Second, "cancellation must abort the backoff sleep")
}

func TestDoValue_ReturnsValue(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := retry.DoValue(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", errTransient
		}
		return "booking-42", nil
	},
		retry.WithMaxAttempts(3),
		retry.WithBaseDelay(time.Millisecond),
	)

	require.NoError(t, err)
	assert.Equal(t, "booking-42", got)
}

func TestDoValue_ZeroValueOnFailure(t *testing.T) {
	t.Parallel()

	got, err := retry.DoValue(context.Background(), func(ctx context.Context) (int, error) {
		return 99, errTransient
	},
		retry.WithMaxAttempts(2),
		retry.WithBaseDelay(time.Millisecond),
	)

	require.ErrorIs(t, err, retry.ErrMaxAttemptsReached)
	assert.Zero(t, got)
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errTransient
	}, retry.WithConfig(retry.Config{
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		MaxDelay:    2 * time.Millisecond,
	}))

	require.ErrorIs(t, err, retry.ErrMaxAttemptsReached)
	assert.Equal(t, 2, calls)
}
