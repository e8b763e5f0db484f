package usecase

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/ponyo877/pyxl/server/domain"
	"github.com/sirupsen/logrus"
)

type RoomUsecase struct {
	rooms RoomRegistry
	store PixelStore
	bus   *domain.ChangeBus
	locks *keyLocks
	log   *logrus.Entry
}

// NewRoomUsecase shares the lock table of pixels so that deleting a room
// waits for placements already in flight.
func NewRoomUsecase(rooms RoomRegistry, pixels *PixelUsecase) *RoomUsecase {
	return &RoomUsecase{
		rooms: rooms,
		store: pixels.store,
		bus:   pixels.bus,
		locks: pixels.locks,
		log:   logrus.WithField("component", "room_usecase"),
	}
}

// CreateRoom creates a room with a fresh id. Zero sizes fall back to the
// default dimensions and an empty palette to the default palette.
func (u *RoomUsecase) CreateRoom(ctx context.Context, name string, width, height int, palette domain.Palette) (domain.Room, error) {
	if width == 0 {
		width = domain.DefaultRoomWidth
	}
	if height == 0 {
		height = domain.DefaultRoomHeight
	}
	room, err := domain.NewRoom(ulid.Make().String(), name, width, height, palette)
	if err != nil {
		return domain.Room{}, err
	}
	if err := u.rooms.CreateRoom(ctx, room); err != nil {
		return domain.Room{}, fmt.Errorf("failed to create room %q: %w", name, err)
	}
	u.log.WithFields(logrus.Fields{
		"room_id": room.ID,
		"name":    room.Name,
		"width":   room.Width,
		"height":  room.Height,
	}).Info("room created")
	return room, nil
}

func (u *RoomUsecase) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	return u.rooms.GetRoom(ctx, id)
}

func (u *RoomUsecase) GetRoomByName(ctx context.Context, name string) (domain.Room, error) {
	return u.rooms.GetRoomByName(ctx, name)
}

func (u *RoomUsecase) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return u.rooms.ListRooms(ctx)
}

// DeleteRoom removes the room, destroys its pixel partition and ends every
// live subscription to it.
func (u *RoomUsecase) DeleteRoom(ctx context.Context, id string) error {
	unlock := u.locks.lockRoom(id)
	defer unlock()

	if err := u.rooms.DeleteRoom(ctx, id); err != nil {
		return err
	}
	if err := u.store.Drop(ctx, id); err != nil {
		u.log.WithField("room_id", id).WithError(err).Error("failed to drop pixel partition")
		return err
	}
	closed := u.bus.CloseRoom(id)
	u.log.WithFields(logrus.Fields{
		"room_id":              id,
		"closed_subscriptions": closed,
	}).Info("room deleted")
	return nil
}
