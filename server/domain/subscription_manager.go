package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// SubscriptionManager binds each live connection to at most one room
// subscription on the ChangeBus and forwards its events to the
// connection's outbound channel.
type SubscriptionManager struct {
	bus *ChangeBus

	mu    sync.RWMutex
	conns map[string]*managedConn
}

type managedConn struct {
	mu          sync.Mutex
	id          string
	remote      string
	outbound    chan<- ChangeEvent
	state       ConnectionState
	roomID      string
	sub         *Subscription
	cancel      context.CancelFunc
	pumpDone    chan struct{}
	connectedAt time.Time
}

func NewSubscriptionManager(bus *ChangeBus) *SubscriptionManager {
	return &SubscriptionManager{
		bus:   bus,
		conns: make(map[string]*managedConn),
	}
}

// Register adds a connection in the Connected state.
func (m *SubscriptionManager) Register(connID, remote string, outbound chan<- ChangeEvent) error {
	if connID == "" || outbound == nil {
		return fmt.Errorf("connection id and outbound channel are required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.conns[connID]; exists {
		return fmt.Errorf("connection already registered: %s", connID)
	}
	m.conns[connID] = &managedConn{
		id:          connID,
		remote:      remote,
		outbound:    outbound,
		state:       StateConnected,
		connectedAt: time.Now(),
	}
	return nil
}

func (m *SubscriptionManager) get(connID string) (*managedConn, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.conns[connID]
	return c, ok
}

// Subscribe moves the connection to roomID, tearing down any prior
// subscription first. ctx bounds the life of the new subscription.
func (m *SubscriptionManager) Subscribe(ctx context.Context, connID, roomID string, prime PrimeFunc) error {
	c, ok := m.get(connID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrConnectionNotFound, connID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateTerminated {
		return ErrConnectionTerminated
	}
	c.teardownLocked()

	sub := m.bus.Subscribe(roomID)
	if prime != nil {
		first, err := prime(ctx, sub)
		if err != nil {
			sub.Cancel()
			return err
		}
		select {
		case c.outbound <- first:
		case <-ctx.Done():
			sub.Cancel()
			return ctx.Err()
		}
	}

	pumpCtx, cancel := context.WithCancel(ctx)
	c.sub = sub
	c.roomID = roomID
	c.cancel = cancel
	c.pumpDone = make(chan struct{})
	c.state = StateSubscribed
	go c.pump(pumpCtx, sub, c.pumpDone)
	return nil
}

func (c *managedConn) pump(ctx context.Context, sub *Subscription, done chan<- struct{}) {
	defer close(done)
	for {
		ev, err := sub.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrSubscriberOverflow) {
				select {
				case c.outbound <- NewClosedEvent(sub.RoomID(), err):
				case <-ctx.Done():
				}
			}
			return
		}
		select {
		case c.outbound <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// teardownLocked releases the current subscription and waits for its pump
// to exit, so nothing is sent to outbound after it returns.
func (c *managedConn) teardownLocked() {
	if c.sub == nil {
		return
	}
	c.sub.Cancel()
	c.cancel()
	<-c.pumpDone
	c.sub = nil
	c.cancel = nil
	c.pumpDone = nil
	c.roomID = ""
	if c.state != StateTerminated {
		c.state = StateConnected
	}
}

// Unsubscribe releases the connection's subscription, if any. Idempotent.
func (m *SubscriptionManager) Unsubscribe(connID string) {
	c, ok := m.get(connID)
	if !ok {
		return
	}
	c.mu.Lock()
	c.teardownLocked()
	c.mu.Unlock()
}

// Terminate releases everything held for the connection and forgets it.
// Idempotent.
func (m *SubscriptionManager) Terminate(connID string) {
	m.mu.Lock()
	c, ok := m.conns[connID]
	delete(m.conns, connID)
	m.mu.Unlock()
	if !ok {
		return
	}

	c.mu.Lock()
	c.teardownLocked()
	c.state = StateTerminated
	c.mu.Unlock()
}

func (m *SubscriptionManager) Connection(connID string) (Connection, bool) {
	c, ok := m.get(connID)
	if !ok {
		return Connection{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return Connection{
		ID:          c.id,
		Remote:      c.remote,
		RoomID:      c.roomID,
		State:       c.state,
		ConnectedAt: c.connectedAt,
	}, true
}

func (m *SubscriptionManager) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// TerminateAll is used on shutdown.
func (m *SubscriptionManager) TerminateAll() {
	m.mu.RLock()
	ids := make([]string, 0, len(m.conns))
	for id := range m.conns {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	for _, id := range ids {
		m.Terminate(id)
	}
}
