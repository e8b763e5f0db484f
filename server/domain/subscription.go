package domain

import (
	"context"
	"iter"
	"sync"
)

// Subscription is one bus listener for one room. Events queue without bound
// (unless the bus sets a pending cap) until read with Next or Events.
type Subscription struct {
	id         uint64
	roomID     string
	bus        *ChangeBus
	maxPending int

	mu     sync.Mutex
	queue  []ChangeEvent
	closed bool
	err    error
	notify chan struct{}
	done   chan struct{}
}

func newSubscription(id uint64, roomID string, bus *ChangeBus, maxPending int) *Subscription {
	return &Subscription{
		id:         id,
		roomID:     roomID,
		bus:        bus,
		maxPending: maxPending,
		notify:     make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
}

func (s *Subscription) RoomID() string {
	return s.roomID
}

// deliver enqueues ev. It reports false when the subscriber overflowed and
// has been terminated.
func (s *Subscription) deliver(ev ChangeEvent) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return true
	}
	if s.maxPending > 0 && len(s.queue) >= s.maxPending {
		s.mu.Unlock()
		s.terminate(ErrSubscriberOverflow, true)
		return false
	}
	s.queue = append(s.queue, ev)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
	return true
}

// terminate stops the subscription. With drop set, queued events are
// discarded; otherwise readers drain them before seeing err.
func (s *Subscription) terminate(err error, drop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	if drop {
		s.queue = nil
	}
	close(s.done)
}

// Next blocks until an event is available, the subscription ends, or ctx is done.
func (s *Subscription) Next(ctx context.Context) (ChangeEvent, error) {
	for {
		if err := ctx.Err(); err != nil {
			return ChangeEvent{}, err
		}
		s.mu.Lock()
		if len(s.queue) > 0 {
			ev := s.queue[0]
			s.queue[0] = ChangeEvent{}
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return ev, nil
		}
		if s.closed {
			err := s.err
			s.mu.Unlock()
			return ChangeEvent{}, err
		}
		s.mu.Unlock()

		select {
		case <-s.notify:
		case <-s.done:
		case <-ctx.Done():
		}
	}
}

// Drain removes and returns every queued event without blocking.
func (s *Subscription) Drain() []ChangeEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.queue
	s.queue = nil
	return pending
}

// Events yields events until the subscription ends, ctx is done, or the
// consumer stops. It does not cancel the subscription.
func (s *Subscription) Events(ctx context.Context) iter.Seq[ChangeEvent] {
	return func(yield func(ChangeEvent) bool) {
		for {
			ev, err := s.Next(ctx)
			if err != nil {
				return
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// Err reports why the subscription ended, or nil while it is live.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Cancel unregisters from the bus and discards pending events. Once Cancel
// returns nothing more is delivered. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.bus != nil {
		s.bus.remove(s)
	}
	s.terminate(ErrSubscriptionClosed, true)
}
