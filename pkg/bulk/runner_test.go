package bulk_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idlekit/pkg/bulk"
)

var errTask = errors.New("task failed")

func TestRun_AggregatesInInputOrder(t *testing.T) {
	t.Parallel()

	tasks := make([]bulk.Task[string], 10)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) (string, error) {
			if i%3 == 0 {
				return "", fmt.Errorf("%w: %d", errTask, i)
			}
			return fmt.Sprintf("value-%d", i), nil
		}
	}

	summary := bulk.Run(context.Background(), tasks)

	require.Len(t, summary.Results, 10)
	for i, r := range summary.Results {
		assert.Equal(t, i, r.Index)
		if i%3 == 0 {
			assert.ErrorIs(t, r.Err, errTask)
		} else {
			assert.Equal(t, fmt.Sprintf("value-%d", i), r.Value)
		}
	}

	assert.Len(t, summary.Fulfilled(), 6)
	assert.Len(t, summary.Rejected(), 4)
	assert.ErrorIs(t, summary.FirstErr(), errTask)
}

func TestRun_RespectsConcurrencyCap(t *testing.T) {
	t.Parallel()

	const limit = 3
	var current, peak atomic.Int64

	tasks := make([]bulk.Task[struct{}], 20)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) (struct{}, error) {
			n := current.Add(1)
			defer current.Add(-1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			return struct{}{}, nil
		}
	}

	summary := bulk.Run(context.Background(), tasks, bulk.WithConcurrency(limit))

	require.Len(t, summary.Rejected(), 0)
	assert.LessOrEqual(t, peak.Load(), int64(limit))
	assert.Greater(t, peak.Load(), int64(0))
}

func TestRun_OneFailureDoesNotAffectSiblings(t *testing.T) {
	t.Parallel()

	tasks := []bulk.Task[int]{
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, errTask },
		func(ctx context.Context) (int, error) { return 3, nil },
	}

	summary := bulk.Run(context.Background(), tasks)

	fulfilled := summary.Fulfilled()
	require.Len(t, fulfilled, 2)
	assert.Equal(t, 1, fulfilled[0].Value)
	assert.Equal(t, 3, fulfilled[1].Value)
}

func TestRun_ContextCancellationRejectsRemainder(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})

	tasks := make([]bulk.Task[struct{}], 5)
	tasks[0] = func(ctx context.Context) (struct{}, error) {
		close(started)
		<-release
		return struct{}{}, nil
	}
	for i := 1; i < len(tasks); i++ {
		tasks[i] = func(ctx context.Context) (struct{}, error) {
			return struct{}{}, nil
		}
	}

	// Concurrency 1 forces everything behind the first blocking task.
	done := make(chan bulk.Summary[struct{}], 1)
	go func() {
		done <- bulk.Run(ctx, tasks, bulk.WithConcurrency(1))
	}()

	<-started
	cancel()
	close(release)

	summary := <-done
	require.Len(t, summary.Results, 5)
	assert.NoError(t, summary.Results[0].Err, "the running task finished normally")
	for _, r := range summary.Results[1:] {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestRun_EmptyBatch(t *testing.T) {
	t.Parallel()

	summary := bulk.Run[struct{}](context.Background(), nil)
	assert.Empty(t, summary.Results)
	assert.NoError(t, summary.FirstErr())
}
