package handler

import (
	"context"

	"github.com/ponyo877/pyxl/server/domain"
	"github.com/ponyo877/pyxl/server/usecase"
)

type PixelUsecase interface {
	PlacePixel(ctx context.Context, roomID string, x, y int, color domain.Color, actor domain.Actor) (domain.Pixel, error)
	PlacePixels(ctx context.Context, roomID string, placements []domain.Placement, actor domain.Actor) ([]domain.Pixel, error)
	GetPixels(ctx context.Context, roomID string) ([]domain.Pixel, error)
	Connect(remote string, outbound chan<- domain.ChangeEvent) (string, error)
	HandleWatchRequest(ctx context.Context, connID string, actor domain.Actor, req domain.WatchRequest) error
	Disconnect(connID string)
	Stats() usecase.Stats
}

type RoomUsecase interface {
	GetRoom(ctx context.Context, id string) (domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

type TokenVerifier interface {
	VerifyHeader(header string) (domain.Actor, error)
}
