package usecase

import (
	"context"
	"iter"

	"github.com/ponyo877/pyxl/server/domain"
)

// PixelStore is the durable room-partitioned pixel map. Put and PutBatch are
// the only write paths.
type PixelStore interface {
	Get(ctx context.Context, roomID string, x, y int) (domain.Pixel, bool, error)
	Scan(ctx context.Context, roomID string) iter.Seq2[domain.Pixel, error]
	Put(ctx context.Context, roomID string, x, y int, color domain.Color, authorID string) (domain.Pixel, error)
	PutBatch(ctx context.Context, roomID string, pixels []domain.Pixel) ([]domain.Pixel, error)
	Drop(ctx context.Context, roomID string) error
}

// RoomRegistry resolves room ids to bounds and palette.
type RoomRegistry interface {
	CreateRoom(ctx context.Context, room domain.Room) error
	GetRoom(ctx context.Context, id string) (domain.Room, error)
	GetRoomByName(ctx context.Context, name string) (domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

type Stats struct {
	Bus         domain.BusStats
	Connections int
}
