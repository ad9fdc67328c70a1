package overlay

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desktop-clock/internal/settings"
)

const waitFor = 2 * time.Second

func startLoop(t *testing.T) (*Loop, *fakeSink, *fakeShell, *clockwork.FakeClock, context.CancelFunc) {
	t.Helper()

	svc, shell, _ := newTestService(t)
	sink := newFakeSink()
	clock := clockwork.NewFakeClockAt(afternoon)

	loop, err := NewLoop(svc, sink, clock)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go loop.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-loop.Done()
	})
	return loop, sink, shell, clock, cancel
}

func nextFrame(t *testing.T, sink *fakeSink) *View {
	t.Helper()
	select {
	case v := <-sink.frames:
		return v
	case <-time.After(waitFor):
		t.Fatal("no frame")
		return nil
	}
}

func nextLayout(t *testing.T, sink *fakeSink) Layout {
	t.Helper()
	select {
	case l := <-sink.layouts:
		return l
	case <-time.After(waitFor):
		t.Fatal("no layout")
		return Layout{}
	}
}

func TestNewLoop_RejectsNil(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := NewLoop(svc, nil, nil)
	assert.Error(t, err)

	_, err = NewLoop(nil, newFakeSink(), nil)
	assert.Error(t, err)
}

func TestLoop_RendersAtStartAndEverySecond(t *testing.T) {
	_, sink, _, clock, _ := startLoop(t)

	first := nextFrame(t, sink)
	require.NotNil(t, first.Digital)
	assert.Equal(t, "03:04 PM", first.Digital.Time)
	nextLayout(t, sink)

	clock.BlockUntil(1)
	clock.Advance(TickInterval)
	nextFrame(t, sink)

	clock.Advance(TickInterval)
	nextFrame(t, sink)
}

func TestLoop_EventsAndCallsInOrder(t *testing.T) {
	loop, sink, _, _, _ := startLoop(t)
	nextFrame(t, sink)
	nextLayout(t, sink)

	ctx := context.Background()
	require.NoError(t, loop.Post(ctx, Event{Kind: BodyLayout, X: 100, Y: 100, Width: 200, Height: 100}))
	require.NoError(t, loop.Post(ctx, Event{Kind: PointerDown, X: 150, Y: 150}))
	require.NoError(t, loop.Post(ctx, Event{Kind: PointerMove, X: 180, Y: 170}))

	var body Rect
	require.NoError(t, loop.Do(ctx, func(s *Service) {
		body = s.Body()
	}))
	assert.Equal(t, Rect{Left: 130, Top: 120, Width: 200, Height: 100}, body)

	var last Layout
	for i := 0; i < 3; i++ {
		last = nextLayout(t, sink)
	}
	assert.Equal(t, body, last.Body)
	assert.True(t, last.Dragging)
}

func TestLoop_SaveRendersImmediately(t *testing.T) {
	loop, sink, _, _, _ := startLoop(t)
	nextFrame(t, sink)

	var err error
	require.NoError(t, loop.Do(context.Background(), func(s *Service) {
		c := s.Settings()
		c.ClockFormat = settings.Format24
		err = s.SaveSettings(c)
	}))
	require.NoError(t, err)

	v := nextFrame(t, sink)
	require.NotNil(t, v.Digital)
	assert.Equal(t, "15:04", v.Digital.Time)
}

func TestLoop_UnknownEventKeepsRunning(t *testing.T) {
	loop, sink, _, _, _ := startLoop(t)
	nextFrame(t, sink)

	ctx := context.Background()
	require.NoError(t, loop.Post(ctx, Event{Kind: "nope"}))
	assert.NoError(t, loop.Do(ctx, func(*Service) {}))
}

func TestLoop_StoppedAfterCancel(t *testing.T) {
	loop, sink, _, _, cancel := startLoop(t)
	nextFrame(t, sink)

	cancel()
	select {
	case <-loop.Done():
	case <-time.After(waitFor):
		t.Fatal("loop did not stop")
	}

	ctx := context.Background()
	assert.ErrorIs(t, loop.Post(ctx, Event{Kind: PointerMove}), ErrStopped)
	assert.ErrorIs(t, loop.Do(ctx, func(*Service) {}), ErrStopped)
}

func TestLoop_PointerMoveSignalsShell(t *testing.T) {
	loop, sink, shell, _, _ := startLoop(t)
	nextFrame(t, sink)

	ctx := context.Background()
	require.NoError(t, loop.Post(ctx, Event{Kind: PointerMove, X: 500, Y: 500}))
	require.NoError(t, loop.Post(ctx, Event{Kind: PointerMove, X: 501, Y: 500}))

	var captures []bool
	require.NoError(t, loop.Do(ctx, func(*Service) {
		captures = append(captures, shell.captures...)
	}))
	assert.Equal(t, []bool{false, false}, captures)
}
