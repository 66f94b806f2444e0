package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idlekit/core/activity"
)

func TestChannelSource_EmitAndReceive(t *testing.T) {
	t.Parallel()

	source := activity.NewChannelSource()
	defer source.Close()

	require.NoError(t, source.Emit(context.Background(), activity.KindClick))

	select {
	case ev := <-source.Events():
		assert.Equal(t, activity.KindClick, ev.Kind)
		assert.WithinDuration(t, time.Now(), ev.At, time.Second)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestChannelSource_Close(t *testing.T) {
	t.Parallel()

	source := activity.NewChannelSource()
	require.NoError(t, source.Close())

	assert.ErrorIs(t, source.Emit(context.Background(), activity.KindClick), activity.ErrSourceClosed)
	assert.ErrorIs(t, source.Close(), activity.ErrSourceClosed)

	// Channel closes so subscribed consumers can exit their loops.
	_, ok := <-source.Events()
	assert.False(t, ok)
}

func TestChannelSource_DropsWhenFull(t *testing.T) {
	t.Parallel()

	source := activity.NewChannelSource(activity.WithBufferSize(1))
	defer source.Close()

	require.NoError(t, source.Emit(context.Background(), activity.KindScroll))
	assert.ErrorIs(t, source.Emit(context.Background(), activity.KindScroll), activity.ErrBufferFull)

	// The first event is intact; the second was dropped, not queued.
	ev := <-source.Events()
	assert.Equal(t, activity.KindScroll, ev.Kind)
	select {
	case ev := <-source.Events():
		t.Fatalf("unexpected buffered event: %s", ev.Kind)
	default:
	}
}

func TestChannelSource_CancelledContext(t *testing.T) {
	t.Parallel()

	source := activity.NewChannelSource(activity.WithBufferSize(1))
	defer source.Close()

	// Fill the buffer so Emit reaches the select.
	require.NoError(t, source.Emit(context.Background(), activity.KindClick))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := source.Emit(ctx, activity.KindClick)
	require.Error(t, err)
	assert.NotErrorIs(t, err, activity.ErrSourceClosed)
}
