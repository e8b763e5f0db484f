package usecase

import (
	"hash/maphash"
	"slices"
	"sync"

	"github.com/ponyo877/pyxl/server/domain"
)

const lockStripes = 256

// keyLocks serializes commit and publish per (room, x, y) so that delivery
// order matches commit order for each coordinate. Rooms get a read/write
// lock so deletion excludes in-flight placements.
type keyLocks struct {
	seed  maphash.Seed
	keys  [lockStripes]sync.Mutex
	rooms [lockStripes]sync.RWMutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{seed: maphash.MakeSeed()}
}

func (l *keyLocks) keyStripe(roomID string, x, y int) int {
	var h maphash.Hash
	h.SetSeed(l.seed)
	h.WriteString(roomID)
	h.WriteByte(0)
	h.WriteString(domain.EncodeKey(x, y))
	return int(h.Sum64() % lockStripes)
}

func (l *keyLocks) roomStripe(roomID string) int {
	return int(maphash.String(l.seed, roomID) % lockStripes)
}

// rlockRoom keeps the room from being deleted until the returned func is
// called. Lookups of the room must happen under it.
func (l *keyLocks) rlockRoom(roomID string) func() {
	room := &l.rooms[l.roomStripe(roomID)]
	room.RLock()
	return room.RUnlock
}

func (l *keyLocks) lockKey(roomID string, x, y int) func() {
	key := &l.keys[l.keyStripe(roomID, x, y)]
	key.Lock()
	return key.Unlock
}

// lockKeys takes every stripe the batch touches in ascending order.
func (l *keyLocks) lockKeys(roomID string, pixels []domain.Pixel) func() {
	stripes := make([]int, 0, len(pixels))
	for _, p := range pixels {
		stripes = append(stripes, l.keyStripe(roomID, p.X, p.Y))
	}
	slices.Sort(stripes)
	stripes = slices.Compact(stripes)

	for _, s := range stripes {
		l.keys[s].Lock()
	}
	return func() {
		for i := len(stripes) - 1; i >= 0; i-- {
			l.keys[stripes[i]].Unlock()
		}
	}
}

// lockRoom excludes every placement and subscription on the room.
func (l *keyLocks) lockRoom(roomID string) func() {
	room := &l.rooms[l.roomStripe(roomID)]
	room.Lock()
	return room.Unlock
}
