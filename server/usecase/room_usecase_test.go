package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ponyo877/pyxl/server/domain"
)

func TestCreateRoomDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	room, err := f.roomUC.CreateRoom(ctx, "lobby", 0, 0, nil)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.ID == "" {
		t.Fatal("CreateRoom returned empty id")
	}
	if room.Width != domain.DefaultRoomWidth || room.Height != domain.DefaultRoomHeight {
		t.Fatalf("bounds = %dx%d; want defaults", room.Width, room.Height)
	}
	if len(room.Palette) != len(domain.DefaultPalette) {
		t.Fatalf("palette has %d colors; want %d", len(room.Palette), len(domain.DefaultPalette))
	}

	got, err := f.roomUC.GetRoom(ctx, room.ID)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if got.Name != "lobby" || len(got.Palette) != len(room.Palette) {
		t.Fatalf("GetRoom = %v; want lobby with default palette", got)
	}

	if _, err := f.roomUC.CreateRoom(ctx, "lobby", 5, 5, nil); !errors.Is(err, domain.ErrRoomExists) {
		t.Fatalf("duplicate name: err = %v; want ErrRoomExists", err)
	}
	if _, err := f.roomUC.CreateRoom(ctx, "bad", 5, 5, domain.Palette{"red"}); !errors.Is(err, domain.ErrInvalidRoom) {
		t.Fatalf("invalid palette: err = %v; want ErrInvalidRoom", err)
	}
}

func TestDeleteRoomDropsPixelsAndClosesSubscriptions(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f := newFixture(t)

	room, err := f.roomUC.CreateRoom(ctx, "doomed", 4, 4, domain.Palette{"#000000"})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if _, err := f.pixels.PlacePixel(ctx, room.ID, 1, 1, "#000000", domain.NewActor("u1")); err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}

	outbound := make(chan domain.ChangeEvent, 4)
	connID, err := f.pixels.Connect("test", outbound)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := f.pixels.Watch(ctx, connID, room.ID); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	<-outbound

	if err := f.roomUC.DeleteRoom(ctx, room.ID); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}

	select {
	case ev := <-outbound:
		if ev.Type != domain.EventClosed || !errors.Is(ev.Err, domain.ErrRoomNotFound) {
			t.Fatalf("event = %v; want closed with ErrRoomNotFound", ev)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for closed event")
	}

	if _, err := f.pixels.GetPixels(ctx, room.ID); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("GetPixels after delete: err = %v; want ErrRoomNotFound", err)
	}
	n, err := f.store.Count(ctx, room.ID)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Fatalf("%d pixels survived room deletion", n)
	}
	if err := f.roomUC.DeleteRoom(ctx, room.ID); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("second DeleteRoom: err = %v; want ErrRoomNotFound", err)
	}
}

func TestListRooms(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, name := range []string{"a", "b", "c"} {
		if _, err := f.roomUC.CreateRoom(ctx, name, 8, 8, nil); err != nil {
			t.Fatalf("CreateRoom(%s): %v", name, err)
		}
	}
	rooms, err := f.roomUC.ListRooms(ctx)
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 3 {
		t.Fatalf("ListRooms returned %d rooms; want 3", len(rooms))
	}
}
