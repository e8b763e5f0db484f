package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ponyo877/pyxl/server/domain"
	"github.com/ponyo877/pyxl/server/repository"
)

type fixture struct {
	db     *sql.DB
	rooms  *repository.RoomRepository
	store  *repository.PixelRepository
	bus    *domain.ChangeBus
	subs   *domain.SubscriptionManager
	pixels *PixelUsecase
	roomUC *RoomUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := repository.Open(filepath.Join(t.TempDir(), "pyxl.db"), 0)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		db:    db,
		rooms: repository.NewRoomRepository(db),
		store: repository.NewPixelRepository(db),
		bus:   domain.NewChangeBus(),
	}
	f.subs = domain.NewSubscriptionManager(f.bus)
	f.pixels = NewPixelUsecase(f.rooms, f.store, f.bus, f.subs)
	f.roomUC = NewRoomUsecase(f.rooms, f.pixels)
	t.Cleanup(f.pixels.Shutdown)
	return f
}

func (f *fixture) demoRoom(t *testing.T) domain.Room {
	t.Helper()
	room, err := domain.NewRoom("demo", "demo", 10, 10, domain.Palette{"#000000", "#FFFFFF"})
	if err != nil {
		t.Fatalf("new room: %v", err)
	}
	if err := f.rooms.CreateRoom(context.Background(), room); err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

func TestDemoScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.demoRoom(t)
	u1, u2 := domain.NewActor("u1"), domain.NewActor("u2")

	mustGet := func(x, y int) (domain.Pixel, bool) {
		t.Helper()
		p, found, err := f.pixels.GetPixel(ctx, "demo", x, y)
		if err != nil {
			t.Fatalf("GetPixel(%d,%d): %v", x, y, err)
		}
		return p, found
	}

	if _, err := f.pixels.PlacePixel(ctx, "demo", 3, 4, "#FFFFFF", u1); err != nil {
		t.Fatalf("place white: %v", err)
	}
	if p, _ := mustGet(3, 4); p.Color != "#FFFFFF" || p.AuthorID != "u1" {
		t.Fatalf("get(3,4) = %v; want #FFFFFF by u1", p)
	}

	if _, err := f.pixels.PlacePixel(ctx, "demo", 3, 4, "#000000", u2); err != nil {
		t.Fatalf("place black: %v", err)
	}
	if p, _ := mustGet(3, 4); p.Color != "#000000" || p.AuthorID != "u2" {
		t.Fatalf("get(3,4) = %v; want #000000 by u2", p)
	}

	_, err := f.pixels.PlacePixel(ctx, "demo", 50, 50, "#000000", u1)
	if !errors.Is(err, domain.ErrOutOfBounds) {
		t.Fatalf("place out of bounds: err = %v; want ErrOutOfBounds", err)
	}
	if _, found := mustGet(50, 50); found {
		t.Fatal("get(50,50) found a pixel after rejected placement")
	}

	_, err = f.pixels.PlacePixel(ctx, "demo", 3, 4, "#FF00FF", u1)
	if !errors.Is(err, domain.ErrInvalidColor) {
		t.Fatalf("place invalid color: err = %v; want ErrInvalidColor", err)
	}
	if p, _ := mustGet(3, 4); p.Color != "#000000" || p.AuthorID != "u2" {
		t.Fatalf("get(3,4) = %v after rejected placement; want unchanged", p)
	}
}

func TestPlacePixelRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.demoRoom(t)
	sub := f.bus.Subscribe("demo")
	defer sub.Cancel()

	tests := []struct {
		name  string
		room  string
		x, y  int
		color domain.Color
		actor domain.Actor
		want  error
	}{
		{"anonymous", "demo", 1, 1, "#000000", domain.Actor{}, domain.ErrUnauthorized},
		{"unknown room", "nope", 1, 1, "#000000", domain.NewActor("u1"), domain.ErrRoomNotFound},
		{"negative x", "demo", -1, 0, "#000000", domain.NewActor("u1"), domain.ErrOutOfBounds},
		{"y at height", "demo", 0, 10, "#000000", domain.NewActor("u1"), domain.ErrOutOfBounds},
		{"lowercase color", "demo", 0, 0, "#ffffff", domain.NewActor("u1"), domain.ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.pixels.PlacePixel(ctx, tt.room, tt.x, tt.y, tt.color, tt.actor)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v; want %v", err, tt.want)
			}
		})
	}

	pixels, err := f.pixels.GetPixels(ctx, "demo")
	if err != nil {
		t.Fatalf("GetPixels: %v", err)
	}
	if len(pixels) != 0 {
		t.Fatalf("rejected placements stored %d pixels", len(pixels))
	}
	if pending := sub.Drain(); len(pending) != 0 {
		t.Fatalf("rejected placements published %d events", len(pending))
	}
}

func TestLiveDelivery(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := newFixture(t)
	f.demoRoom(t)

	placements, err := f.pixels.SubscribePlacements(ctx, "demo")
	if err != nil {
		t.Fatalf("SubscribePlacements: %v", err)
	}
	next, stop := iter.Pull(placements)
	defer stop()

	placed, err := f.pixels.PlacePixel(ctx, "demo", 2, 2, "#FFFFFF", domain.NewActor("u1"))
	if err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}
	got, ok := next()
	if !ok {
		t.Fatal("subscription ended before delivering placement")
	}
	if got != placed {
		t.Fatalf("received %v; want %v", got, placed)
	}
}

func TestSubscribeAfterCancelReceivesNothing(t *testing.T) {
	f := newFixture(t)
	f.demoRoom(t)

	ctx, cancel := context.WithCancel(context.Background())
	placements, err := f.pixels.SubscribePlacements(ctx, "demo")
	if err != nil {
		t.Fatalf("SubscribePlacements: %v", err)
	}
	cancel()

	if _, err := f.pixels.PlacePixel(context.Background(), "demo", 1, 1, "#000000", domain.NewActor("u1")); err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}
	for p := range placements {
		t.Fatalf("received %v after cancellation", p)
	}
	if n := f.bus.SubscriberCount("demo"); n != 0 {
		t.Fatalf("SubscriberCount = %d after cancellation; want 0", n)
	}
}

func TestSubscribeUnknownRoom(t *testing.T) {
	f := newFixture(t)
	if _, err := f.pixels.SubscribePlacements(context.Background(), "missing"); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("err = %v; want ErrRoomNotFound", err)
	}
}

func TestPlacePixelsBatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := newFixture(t)
	f.demoRoom(t)

	batches, err := f.pixels.SubscribeBatches(ctx, "demo")
	if err != nil {
		t.Fatalf("SubscribeBatches: %v", err)
	}
	next, stop := iter.Pull(batches)
	defer stop()

	stored, err := f.pixels.PlacePixels(ctx, "demo", []domain.Placement{
		{X: 0, Y: 0, Color: "#000000"},
		{X: 1, Y: 0, Color: "#000000"},
		{X: 0, Y: 0, Color: "#FFFFFF"},
	}, domain.NewActor("u1"))
	if err != nil {
		t.Fatalf("PlacePixels: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d pixels; want 2 after collapsing duplicate", len(stored))
	}

	got, ok := next()
	if !ok {
		t.Fatal("batch subscription ended early")
	}
	if len(got) != 2 || got[0].Color != "#FFFFFF" {
		t.Fatalf("batch = %v; want 2 pixels with (0,0) white", got)
	}

	p, _, err := f.pixels.GetPixel(ctx, "demo", 0, 0)
	if err != nil || p.Color != "#FFFFFF" {
		t.Fatalf("GetPixel(0,0) = %v, %v; want white", p, err)
	}
}

func TestPlacePixelsRejectsWholeBatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.demoRoom(t)

	_, err := f.pixels.PlacePixels(ctx, "demo", []domain.Placement{
		{X: 0, Y: 0, Color: "#000000"},
		{X: 0, Y: 11, Color: "#000000"},
	}, domain.NewActor("u1"))
	if !errors.Is(err, domain.ErrOutOfBounds) {
		t.Fatalf("err = %v; want ErrOutOfBounds", err)
	}
	if _, found, _ := f.pixels.GetPixel(ctx, "demo", 0, 0); found {
		t.Fatal("partial batch was stored")
	}

	big := make([]domain.Placement, MaxBatchSize+1)
	if _, err := f.pixels.PlacePixels(ctx, "demo", big, domain.NewActor("u1")); !errors.Is(err, domain.ErrBatchTooLarge) {
		t.Fatalf("oversized batch: err = %v; want ErrBatchTooLarge", err)
	}
}

func TestJoinSnapshotThenLive(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := newFixture(t)
	f.demoRoom(t)
	actor := domain.NewActor("u1")

	for x := range 3 {
		if _, err := f.pixels.PlacePixel(ctx, "demo", x, 0, "#000000", actor); err != nil {
			t.Fatalf("PlacePixel: %v", err)
		}
	}
	snapshot, sub, err := f.pixels.Join(ctx, "demo")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	defer sub.Cancel()
	if len(snapshot) != 3 {
		t.Fatalf("snapshot has %d pixels; want 3", len(snapshot))
	}

	if _, err := f.pixels.PlacePixel(ctx, "demo", 9, 9, "#FFFFFF", actor); err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}
	ev, err := sub.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if p, ok := ev.Pixel(); !ok || p.X != 9 || p.Y != 9 {
		t.Fatalf("live event = %v; want pixel at (9,9)", ev)
	}
}

// Placements racing with joins must each end up either in the joiner's
// snapshot or on its live stream.
func TestJoinDuringPlacementsMissesNothing(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	f := newFixture(t)
	f.demoRoom(t)
	actor := domain.NewActor("writer")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 100 {
			color := domain.Color("#000000")
			if i%2 == 1 {
				color = "#FFFFFF"
			}
			if _, err := f.pixels.PlacePixel(ctx, "demo", i%10, i/10, color, actor); err != nil {
				t.Errorf("PlacePixel: %v", err)
				return
			}
		}
	}()

	time.Sleep(time.Millisecond)
	snapshot, sub, err := f.pixels.Join(ctx, "demo")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	defer sub.Cancel()
	wg.Wait()

	view := make(map[domain.Coord]domain.Color, 100)
	for _, p := range snapshot {
		view[p.Coord()] = p.Color
	}
	for _, ev := range sub.Drain() {
		for _, p := range ev.Pixels {
			view[p.Coord()] = p.Color
		}
	}

	stored, err := f.pixels.GetPixels(ctx, "demo")
	if err != nil {
		t.Fatalf("GetPixels: %v", err)
	}
	if len(view) != len(stored) {
		t.Fatalf("viewer sees %d pixels; store has %d", len(view), len(stored))
	}
	for _, p := range stored {
		if view[p.Coord()] != p.Color {
			t.Fatalf("viewer has %s at %v; store has %s", view[p.Coord()], p.Coord(), p.Color)
		}
	}
}

func TestConcurrentPlacementsSameKeyDeliveryOrder(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	f := newFixture(t)
	f.demoRoom(t)
	sub := f.bus.Subscribe("demo")
	defer sub.Cancel()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			actor := domain.NewActor(fmt.Sprintf("u%d", i))
			for j := range 10 {
				color := domain.Color("#000000")
				if j%2 == 0 {
					color = "#FFFFFF"
				}
				if _, err := f.pixels.PlacePixel(ctx, "demo", 5, 5, color, actor); err != nil {
					t.Errorf("PlacePixel: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	events := sub.Drain()
	if len(events) != 80 {
		t.Fatalf("received %d events; want 80", len(events))
	}
	last, _ := events[len(events)-1].Pixel()
	stored, found, err := f.pixels.GetPixel(ctx, "demo", 5, 5)
	if err != nil || !found {
		t.Fatalf("GetPixel: found %v, err %v", found, err)
	}
	if stored != last {
		t.Fatalf("stored %v; last delivered %v", stored, last)
	}
}

func TestWatchConnection(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := newFixture(t)
	f.demoRoom(t)
	actor := domain.NewActor("u1")

	if _, err := f.pixels.PlacePixel(ctx, "demo", 1, 1, "#000000", actor); err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}

	outbound := make(chan domain.ChangeEvent, 8)
	connID, err := f.pixels.Connect("test", outbound)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := f.pixels.Watch(ctx, connID, "demo"); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	first := <-outbound
	if first.Type != domain.EventSnapshot || len(first.Pixels) != 1 {
		t.Fatalf("first event = %v; want snapshot with 1 pixel", first)
	}

	if _, err := f.pixels.PlacePixel(ctx, "demo", 2, 2, "#FFFFFF", actor); err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}
	select {
	case ev := <-outbound:
		if ev.Type != domain.EventPixel {
			t.Fatalf("live event = %v; want pixel", ev)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for live event")
	}

	f.pixels.Leave(connID)
	if _, err := f.pixels.PlacePixel(ctx, "demo", 3, 3, "#FFFFFF", actor); err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}
	select {
	case ev := <-outbound:
		t.Fatalf("received %v after Leave", ev)
	default:
	}

	f.pixels.Disconnect(connID)
	if err := f.pixels.Watch(ctx, connID, "demo"); !errors.Is(err, domain.ErrConnectionNotFound) {
		t.Fatalf("Watch after Disconnect: err = %v; want ErrConnectionNotFound", err)
	}
	if got := f.pixels.Stats().Connections; got != 0 {
		t.Fatalf("Connections = %d after Disconnect; want 0", got)
	}
}

type failingStore struct {
	PixelStore
	err error
}

func (s failingStore) Put(ctx context.Context, roomID string, x, y int, color domain.Color, authorID string) (domain.Pixel, error) {
	return domain.Pixel{}, domain.NewStorageError("put", roomID, s.err)
}

func TestStorageErrorSurfacedAndNotPublished(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.demoRoom(t)
	sub := f.bus.Subscribe("demo")
	defer sub.Cancel()

	cause := errors.New("disk full")
	uc := NewPixelUsecase(f.rooms, failingStore{PixelStore: f.store, err: cause}, f.bus, f.subs)

	_, err := uc.PlacePixel(ctx, "demo", 1, 1, "#000000", domain.NewActor("u1"))
	if !domain.IsStorageError(err) {
		t.Fatalf("err = %v; want StorageError", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v; want wrapped cause", err)
	}
	if pending := sub.Drain(); len(pending) != 0 {
		t.Fatalf("failed placement published %d events", len(pending))
	}

	// The next call on a healthy store still works.
	if _, err := f.pixels.PlacePixel(ctx, "demo", 1, 1, "#000000", domain.NewActor("u1")); err != nil {
		t.Fatalf("PlacePixel after failure: %v", err)
	}
}

func TestHandleWatchRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := newFixture(t)
	f.demoRoom(t)
	actor := domain.NewActor("u1")

	outbound := make(chan domain.ChangeEvent, 8)
	connID, err := f.pixels.Connect("test", outbound)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer f.pixels.Disconnect(connID)

	place := domain.NewPlaceRequest("", domain.Placement{X: 1, Y: 1, Color: "#000000"})
	if err := f.pixels.HandleWatchRequest(ctx, connID, actor, place); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("place before join: err = %v; want ErrInvalidRequest", err)
	}
	if err := f.pixels.HandleWatchRequest(ctx, connID, actor, domain.NewJoinRequest("")); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("join without room: err = %v; want ErrInvalidRequest", err)
	}

	if err := f.pixels.HandleWatchRequest(ctx, connID, actor, domain.NewJoinRequest("demo")); err != nil {
		t.Fatalf("join: %v", err)
	}
	if ev := <-outbound; ev.Type != domain.EventSnapshot {
		t.Fatalf("first event = %v; want snapshot", ev)
	}
	if err := f.pixels.HandleWatchRequest(ctx, connID, actor, place); err != nil {
		t.Fatalf("place: %v", err)
	}
	if ev := <-outbound; ev.Type != domain.EventPixel {
		t.Fatalf("event = %v; want pixel", ev)
	}
	if err := f.pixels.HandleWatchRequest(ctx, connID, domain.Actor{}, place); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous place: err = %v; want ErrUnauthorized", err)
	}

	if err := f.pixels.HandleWatchRequest(ctx, connID, actor, domain.NewLeaveRequest()); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if conn, _ := f.subs.Connection(connID); conn.State != domain.StateConnected {
		t.Fatalf("state after leave = %v; want connected", conn.State)
	}
}

// gatedRooms parks the first GetRoom after the lookup until release is closed.
type gatedRooms struct {
	RoomRegistry
	looked  chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedRooms(inner RoomRegistry) *gatedRooms {
	return &gatedRooms{
		RoomRegistry: inner,
		looked:       make(chan struct{}),
		release:      make(chan struct{}),
	}
}

func (g *gatedRooms) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	room, err := g.RoomRegistry.GetRoom(ctx, id)
	g.once.Do(func() {
		close(g.looked)
		<-g.release
	})
	return room, err
}

// deleteWhileGated starts DeleteRoom once the gated lookup has happened and
// lets the lookup continue shortly after.
func deleteWhileGated(t *testing.T, gate *gatedRooms, rooms *RoomUsecase, roomID string) <-chan error {
	t.Helper()
	select {
	case <-gate.looked:
	case <-time.After(2 * time.Second):
		t.Fatal("room lookup never happened")
	}
	deleted := make(chan error, 1)
	go func() { deleted <- rooms.DeleteRoom(context.Background(), roomID) }()
	time.Sleep(50 * time.Millisecond)
	close(gate.release)
	return deleted
}

func TestDeleteRoomDuringPlacementLeavesNoPixels(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.demoRoom(t)
	gate := newGatedRooms(f.rooms)
	uc := NewPixelUsecase(gate, f.store, f.bus, f.subs)
	roomUC := NewRoomUsecase(f.rooms, uc)

	placed := make(chan error, 1)
	go func() {
		_, err := uc.PlacePixel(ctx, "demo", 1, 1, "#000000", domain.NewActor("u1"))
		placed <- err
	}()
	deleted := deleteWhileGated(t, gate, roomUC, "demo")

	if err := <-deleted; err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if err := <-placed; err != nil && !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("PlacePixel = %v; want success or ErrRoomNotFound", err)
	}

	var partitions, pixels int
	if err := f.db.QueryRow("SELECT COUNT(*) FROM partitions WHERE room_id = 'demo'").Scan(&partitions); err != nil {
		t.Fatalf("count partitions: %v", err)
	}
	if err := f.db.QueryRow("SELECT COUNT(*) FROM pixels WHERE partition = 'demo'").Scan(&pixels); err != nil {
		t.Fatalf("count pixels: %v", err)
	}
	if partitions != 0 || pixels != 0 {
		t.Fatalf("after delete: %d partitions, %d pixels; want none", partitions, pixels)
	}
	if _, err := uc.PlacePixel(ctx, "demo", 2, 2, "#000000", domain.NewActor("u1")); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("PlacePixel after delete = %v; want ErrRoomNotFound", err)
	}
}

func TestDeleteRoomDuringSubscribeEndsStream(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := newFixture(t)
	f.demoRoom(t)
	gate := newGatedRooms(f.rooms)
	uc := NewPixelUsecase(gate, f.store, f.bus, f.subs)
	roomUC := NewRoomUsecase(f.rooms, uc)

	type result struct {
		placements iter.Seq[domain.Pixel]
		err        error
	}
	subscribed := make(chan result, 1)
	go func() {
		placements, err := uc.SubscribePlacements(ctx, "demo")
		subscribed <- result{placements, err}
	}()
	deleted := deleteWhileGated(t, gate, roomUC, "demo")

	if err := <-deleted; err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	res := <-subscribed
	if res.err != nil {
		if !errors.Is(res.err, domain.ErrRoomNotFound) {
			t.Fatalf("SubscribePlacements = %v; want success or ErrRoomNotFound", res.err)
		}
		return
	}

	ended := make(chan struct{})
	go func() {
		defer close(ended)
		for p := range res.placements {
			t.Errorf("received %v from a deleted room", p)
		}
	}()
	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription to deleted room never ended")
	}
	if n := f.bus.SubscriberCount("demo"); n != 0 {
		t.Fatalf("SubscriberCount = %d; want 0", n)
	}
}

func TestDeleteRoomDuringWatchClosesConnection(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := newFixture(t)
	f.demoRoom(t)
	gate := newGatedRooms(f.rooms)
	uc := NewPixelUsecase(gate, f.store, f.bus, f.subs)
	roomUC := NewRoomUsecase(f.rooms, uc)

	outbound := make(chan domain.ChangeEvent, 8)
	connID, err := uc.Connect("test", outbound)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer uc.Disconnect(connID)

	watched := make(chan error, 1)
	go func() { watched <- uc.Watch(ctx, connID, "demo") }()
	deleted := deleteWhileGated(t, gate, roomUC, "demo")

	if err := <-deleted; err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if err := <-watched; err != nil {
		if !errors.Is(err, domain.ErrRoomNotFound) {
			t.Fatalf("Watch = %v; want success or ErrRoomNotFound", err)
		}
		return
	}

	if ev := <-outbound; ev.Type != domain.EventSnapshot {
		t.Fatalf("first event = %v; want snapshot", ev)
	}
	select {
	case ev := <-outbound:
		if ev.Type != domain.EventClosed {
			t.Fatalf("event = %v; want closed", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch on deleted room was never closed")
	}
}
