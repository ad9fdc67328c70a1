package overlay

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"

	"desktop-clock/internal/logger"
)

// ErrStopped is returned when posting to a loop that has exited.
var ErrStopped = errors.New("overlay: loop stopped")

// TickInterval is how often the clock is redrawn.
const TickInterval = time.Second

// Sink receives what the loop produces. It is called on the loop
// goroutine and must not block for long.
type Sink interface {
	Frame(v *View)
	Layout(l Layout)
}

// message is either an event or a call; both share one queue so they are
// handled in the order they were posted.
type message struct {
	event Event
	fn    func(*Service)
	done  chan struct{}
}

// Loop is the single goroutine that owns a Service. Ticks, input events
// and calls are handled one at a time in arrival order.
type Loop struct {
	svc   *Service
	sink  Sink
	clock clockwork.Clock
	queue chan message
	done  chan struct{}
}

// NewLoop creates a loop around svc. A nil clock uses the real one.
func NewLoop(svc *Service, sink Sink, clock clockwork.Clock) (*Loop, error) {
	if svc == nil {
		return nil, errors.New("overlay: nil service")
	}
	if sink == nil {
		return nil, errors.New("overlay: nil sink")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Loop{
		svc:   svc,
		sink:  sink,
		clock: clock,
		queue: make(chan message, 64),
		done:  make(chan struct{}),
	}, nil
}

// Run processes ticks, events and calls until ctx is cancelled. The first
// frame is sent before the first tick.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := l.clock.NewTicker(TickInterval)
	defer ticker.Stop()

	logger.Debug("overlay loop started")
	l.flush()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("overlay loop stopped")
			return ctx.Err()

		case <-ticker.Chan():
			l.svc.Tick()
			l.flush()

		case m := <-l.queue:
			if m.fn != nil {
				m.fn(l.svc)
				l.flush()
				close(m.done)
				continue
			}
			if err := l.svc.Handle(m.event); err != nil {
				logger.Warn("failed to handle event", "kind", m.event.Kind, "err", err)
			}
			l.flush()
		}
	}
}

// Post queues an input event.
func (l *Loop) Post(ctx context.Context, ev Event) error {
	if l.stopped() {
		return ErrStopped
	}

	select {
	case l.queue <- message{event: ev}:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs fn on the loop goroutine and waits until it and the resulting
// frame and layout updates are done.
func (l *Loop) Do(ctx context.Context, fn func(*Service)) error {
	if l.stopped() {
		return ErrStopped
	}

	m := message{fn: fn, done: make(chan struct{})}
	select {
	case l.queue <- m:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-m.done:
		return nil
	case <-l.done:
		// the loop may exit with the call still queued
		select {
		case <-m.done:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) stopped() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

func (l *Loop) flush() {
	frame, layout := l.svc.takeDirty()
	if layout {
		l.sink.Layout(l.svc.Layout())
	}
	if frame {
		l.sink.Frame(l.svc.Render(l.clock.Now()))
	}
}
