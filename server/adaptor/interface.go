package adaptor

import (
	"context"
	"iter"

	"github.com/ponyo877/pyxl/server/domain"
)

type PixelUsecase interface {
	PlacePixel(ctx context.Context, roomID string, x, y int, color domain.Color, actor domain.Actor) (domain.Pixel, error)
	PlacePixels(ctx context.Context, roomID string, placements []domain.Placement, actor domain.Actor) ([]domain.Pixel, error)
	GetPixels(ctx context.Context, roomID string) ([]domain.Pixel, error)
	SubscribePlacements(ctx context.Context, roomID string) (iter.Seq[domain.Pixel], error)
	SubscribeBatches(ctx context.Context, roomID string) (iter.Seq[[]domain.Pixel], error)
	Connect(remote string, outbound chan<- domain.ChangeEvent) (string, error)
	HandleWatchRequest(ctx context.Context, connID string, actor domain.Actor, req domain.WatchRequest) error
	Disconnect(connID string)
}

type RoomUsecase interface {
	CreateRoom(ctx context.Context, name string, width, height int, palette domain.Palette) (domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

// TokenVerifier turns an Authorization header into an actor.
type TokenVerifier interface {
	VerifyHeader(header string) (domain.Actor, error)
}
