package netstatus_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idlekit/pkg/netstatus"
)

func waitStatus(t *testing.T, ch <-chan netstatus.Status, timeout time.Duration) netstatus.Status {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "subscription closed unexpectedly")
		return s
	case <-time.After(timeout):
		t.Fatal("timed out waiting for status")
		return netstatus.Status{}
	}
}

func TestManualProvider_StartsOnline(t *testing.T) {
	t.Parallel()

	provider := netstatus.NewManualProvider()
	assert.False(t, provider.Offline())
}

func TestManualProvider_TransitionsNotifySubscribers(t *testing.T) {
	t.Parallel()

	provider := netstatus.NewManualProvider()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := provider.Subscribe(ctx)

	provider.SetOffline(true)
	status := waitStatus(t, sub, time.Second)
	assert.True(t, status.Offline)
	assert.True(t, provider.Offline())

	provider.SetOffline(false)
	status = waitStatus(t, sub, time.Second)
	assert.False(t, status.Offline)
}

func TestManualProvider_RedundantSetsIgnored(t *testing.T) {
	t.Parallel()

	provider := netstatus.NewManualProvider()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := provider.Subscribe(ctx)

	provider.SetOffline(false) // already online
	provider.SetOffline(true)
	provider.SetOffline(true) // already offline

	waitStatus(t, sub, time.Second)
	select {
	case s := <-sub:
		t.Fatalf("unexpected extra status: %+v", s)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestManualProvider_SlowSubscriberNeverBlocks(t *testing.T) {
	t.Parallel()

	provider := netstatus.NewManualProvider()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = provider.Subscribe(ctx) // never read

	// Many more transitions than the subscriber buffer holds; SetOffline
	// must drop rather than stall.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 100 {
			provider.SetOffline(i%2 == 0)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("SetOffline blocked on a slow subscriber")
	}
}

func TestManualProvider_UnsubscribeOnContextCancel(t *testing.T) {
	t.Parallel()

	provider := netstatus.NewManualProvider()

	ctx, cancel := context.WithCancel(context.Background())
	sub := provider.Subscribe(ctx)
	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-sub:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond, "subscription channel should close")
}
