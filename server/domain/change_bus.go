package domain

import (
	"sync"
	"sync/atomic"
	"time"
)

// ChangeBus fans confirmed placements out to the live subscribers of a room.
// Delivery is in-memory and at-most-once; a subscriber only sees events
// published after Subscribe returned.
type ChangeBus struct {
	mu         sync.RWMutex
	rooms      map[string]*busRoom
	nextID     uint64
	maxPending int
	stats      BusStats
	published  atomic.Int64
	dropped    atomic.Int64
	startTime  time.Time
}

type busRoom struct {
	mu          sync.RWMutex
	roomID      string
	subscribers map[uint64]*Subscription
}

type BusStats struct {
	ActiveRooms         int
	ActiveSubscriptions int
	TotalPublished      int64
	TotalDropped        int64
	Uptime              string
}

type ChangeBusOption func(*ChangeBus)

// WithMaxPending caps queued events per subscriber; a subscriber exceeding
// it is terminated with ErrSubscriberOverflow. Zero means unbounded.
func WithMaxPending(n int) ChangeBusOption {
	return func(b *ChangeBus) {
		if n > 0 {
			b.maxPending = n
		}
	}
}

func NewChangeBus(opts ...ChangeBusOption) *ChangeBus {
	b := &ChangeBus{
		rooms:     make(map[string]*busRoom),
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *ChangeBus) Subscribe(roomID string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	room, exists := b.rooms[roomID]
	if !exists {
		room = &busRoom{
			roomID:      roomID,
			subscribers: make(map[uint64]*Subscription),
		}
		b.rooms[roomID] = room
	}
	b.nextID++
	sub := newSubscription(b.nextID, roomID, b, b.maxPending)

	room.mu.Lock()
	room.subscribers[sub.id] = sub
	room.mu.Unlock()

	b.stats.ActiveSubscriptions++
	b.stats.ActiveRooms = len(b.rooms)
	return sub
}

func (b *ChangeBus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	room, exists := b.rooms[sub.roomID]
	if !exists {
		return
	}
	room.mu.Lock()
	if _, ok := room.subscribers[sub.id]; !ok {
		room.mu.Unlock()
		return
	}
	delete(room.subscribers, sub.id)
	empty := len(room.subscribers) == 0
	room.mu.Unlock()

	if empty {
		delete(b.rooms, sub.roomID)
	}
	b.stats.ActiveSubscriptions--
	b.stats.ActiveRooms = len(b.rooms)
}

// Publish delivers one placement to every current subscriber of roomID and
// returns how many received it.
func (b *ChangeBus) Publish(roomID string, pixel Pixel) int {
	return b.publish(NewPixelEvent(roomID, pixel))
}

// PublishBatch delivers pixels as a single event; subscribers see all of it or none.
func (b *ChangeBus) PublishBatch(roomID string, pixels []Pixel) int {
	if len(pixels) == 0 {
		return 0
	}
	return b.publish(NewBatchEvent(roomID, pixels))
}

func (b *ChangeBus) publish(ev ChangeEvent) int {
	b.mu.RLock()
	room, exists := b.rooms[ev.RoomID]
	b.mu.RUnlock()
	if !exists {
		return 0
	}

	var overflowed []*Subscription
	delivered := 0
	room.mu.RLock()
	for _, sub := range room.subscribers {
		if sub.deliver(ev) {
			delivered++
		} else {
			overflowed = append(overflowed, sub)
		}
	}
	room.mu.RUnlock()

	for _, sub := range overflowed {
		b.remove(sub)
	}

	b.published.Add(1)
	b.dropped.Add(int64(len(overflowed)))
	return delivered
}

// CloseRoom ends every subscription of roomID. Readers drain what was
// already queued, then observe ErrRoomNotFound.
func (b *ChangeBus) CloseRoom(roomID string) int {
	b.mu.Lock()
	room, exists := b.rooms[roomID]
	if !exists {
		b.mu.Unlock()
		return 0
	}
	delete(b.rooms, roomID)

	room.mu.Lock()
	subs := make([]*Subscription, 0, len(room.subscribers))
	for _, sub := range room.subscribers {
		subs = append(subs, sub)
	}
	room.subscribers = make(map[uint64]*Subscription)
	room.mu.Unlock()

	b.stats.ActiveSubscriptions -= len(subs)
	b.stats.ActiveRooms = len(b.rooms)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.terminate(ErrRoomNotFound, false)
	}
	return len(subs)
}

func (b *ChangeBus) SubscriberCount(roomID string) int {
	b.mu.RLock()
	room, exists := b.rooms[roomID]
	b.mu.RUnlock()
	if !exists {
		return 0
	}
	room.mu.RLock()
	defer room.mu.RUnlock()
	return len(room.subscribers)
}

func (b *ChangeBus) ActiveRooms() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rooms := make([]string, 0, len(b.rooms))
	for roomID := range b.rooms {
		rooms = append(rooms, roomID)
	}
	return rooms
}

// Close terminates every subscription of every room.
func (b *ChangeBus) Close() {
	for _, roomID := range b.ActiveRooms() {
		b.CloseRoom(roomID)
	}
}

func (b *ChangeBus) GetStats() BusStats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := b.stats
	stats.TotalPublished = b.published.Load()
	stats.TotalDropped = b.dropped.Load()
	stats.Uptime = time.Since(b.startTime).String()
	return stats
}
