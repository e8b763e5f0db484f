package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/oklog/ulid/v2"
	"github.com/ponyo877/pyxl/server/domain"
	"github.com/sirupsen/logrus"
)

const MaxBatchSize = 1024

// PixelUsecase is the storage-and-fanout engine exposed to transports.
type PixelUsecase struct {
	rooms     RoomRegistry
	store     PixelStore
	bus       *domain.ChangeBus
	subs      *domain.SubscriptionManager
	validator domain.PlacementValidator
	locks     *keyLocks
	log       *logrus.Entry
}

func NewPixelUsecase(rooms RoomRegistry, store PixelStore, bus *domain.ChangeBus, subs *domain.SubscriptionManager) *PixelUsecase {
	return &PixelUsecase{
		rooms:     rooms,
		store:     store,
		bus:       bus,
		subs:      subs,
		validator: domain.NewPlacementValidator(),
		locks:     newKeyLocks(),
		log:       logrus.WithField("component", "pixel_usecase"),
	}
}

func (u *PixelUsecase) room(ctx context.Context, roomID string) (domain.Room, error) {
	room, err := u.rooms.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return domain.Room{}, err
		}
		return domain.Room{}, fmt.Errorf("error resolving room %s: %w", roomID, err)
	}
	return room, nil
}

// PlacePixel validates, durably stores, then publishes one placement.
func (u *PixelUsecase) PlacePixel(ctx context.Context, roomID string, x, y int, color domain.Color, actor domain.Actor) (domain.Pixel, error) {
	if err := u.validator.ValidateActor(actor); err != nil {
		return domain.Pixel{}, err
	}
	runlock := u.locks.rlockRoom(roomID)
	defer runlock()

	room, err := u.room(ctx, roomID)
	if err != nil {
		return domain.Pixel{}, err
	}
	if err := u.validator.Validate(room, x, y, color, actor); err != nil {
		return domain.Pixel{}, err
	}

	unlock := u.locks.lockKey(roomID, x, y)
	defer unlock()

	pixel, err := u.store.Put(ctx, roomID, x, y, color, actor.ID)
	if err != nil {
		u.log.WithFields(logrus.Fields{
			"room_id": roomID,
			"actor":   actor.ID,
			"x":       x,
			"y":       y,
		}).WithError(err).Error("failed to store pixel")
		return domain.Pixel{}, err
	}
	delivered := u.bus.Publish(roomID, pixel)
	u.log.WithFields(logrus.Fields{
		"room_id":   roomID,
		"actor":     actor.ID,
		"pixel":     pixel.String(),
		"delivered": delivered,
	}).Debug("pixel placed")
	return pixel, nil
}

// PlacePixels stores a batch atomically and publishes it as one event.
// Within a batch a later placement to the same coordinate wins.
func (u *PixelUsecase) PlacePixels(ctx context.Context, roomID string, placements []domain.Placement, actor domain.Actor) ([]domain.Pixel, error) {
	if err := u.validator.ValidateActor(actor); err != nil {
		return nil, err
	}
	if len(placements) == 0 {
		return nil, nil
	}
	if len(placements) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d placements exceeds limit %d", domain.ErrBatchTooLarge, len(placements), MaxBatchSize)
	}
	runlock := u.locks.rlockRoom(roomID)
	defer runlock()

	room, err := u.room(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := u.validator.ValidateBatch(room, placements, actor); err != nil {
		return nil, err
	}

	pixels := collapse(placements, actor.ID)

	unlock := u.locks.lockKeys(roomID, pixels)
	defer unlock()

	stored, err := u.store.PutBatch(ctx, roomID, pixels)
	if err != nil {
		u.log.WithFields(logrus.Fields{
			"room_id": roomID,
			"actor":   actor.ID,
			"count":   len(pixels),
		}).WithError(err).Error("failed to store pixel batch")
		return nil, err
	}
	u.bus.PublishBatch(roomID, stored)
	return stored, nil
}

func collapse(placements []domain.Placement, authorID string) []domain.Pixel {
	index := make(map[domain.Coord]int, len(placements))
	pixels := make([]domain.Pixel, 0, len(placements))
	for _, p := range placements {
		pixel := domain.NewPixel(p.X, p.Y, p.Color, authorID)
		if i, ok := index[pixel.Coord()]; ok {
			pixels[i] = pixel
			continue
		}
		index[pixel.Coord()] = len(pixels)
		pixels = append(pixels, pixel)
	}
	return pixels
}

// GetPixel returns found=false for a coordinate that was never placed.
func (u *PixelUsecase) GetPixel(ctx context.Context, roomID string, x, y int) (domain.Pixel, bool, error) {
	if _, err := u.room(ctx, roomID); err != nil {
		return domain.Pixel{}, false, err
	}
	return u.store.Get(ctx, roomID, x, y)
}

// GetPixels returns the full snapshot of the room.
func (u *PixelUsecase) GetPixels(ctx context.Context, roomID string) ([]domain.Pixel, error) {
	if _, err := u.room(ctx, roomID); err != nil {
		return nil, err
	}
	return u.readAll(ctx, roomID)
}

// ScanPixels is the lazy form of GetPixels.
func (u *PixelUsecase) ScanPixels(ctx context.Context, roomID string) (iter.Seq2[domain.Pixel, error], error) {
	if _, err := u.room(ctx, roomID); err != nil {
		return nil, err
	}
	return u.store.Scan(ctx, roomID), nil
}

func (u *PixelUsecase) readAll(ctx context.Context, roomID string) ([]domain.Pixel, error) {
	var pixels []domain.Pixel
	for pixel, err := range u.store.Scan(ctx, roomID) {
		if err != nil {
			u.log.WithField("room_id", roomID).WithError(err).Error("failed to scan pixels")
			return nil, err
		}
		pixels = append(pixels, pixel)
	}
	return pixels, nil
}

// Join subscribes to roomID and then reads its snapshot. Events published
// during the read are folded into the returned snapshot; everything later
// arrives on the subscription. The caller owns the subscription.
func (u *PixelUsecase) Join(ctx context.Context, roomID string) ([]domain.Pixel, *domain.Subscription, error) {
	sub, err := u.subscribeRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	snapshot, err := u.snapshot(ctx, sub)
	if err != nil {
		sub.Cancel()
		return nil, nil, err
	}
	return snapshot.Pixels, sub, nil
}

func (u *PixelUsecase) snapshot(ctx context.Context, sub *domain.Subscription) (domain.ChangeEvent, error) {
	pixels, err := u.readAll(ctx, sub.RoomID())
	if err != nil {
		return domain.ChangeEvent{}, err
	}
	return domain.NewSnapshotEvent(sub.RoomID(), domain.MergeSnapshot(pixels, sub.Drain())), nil
}

// SubscribePlacements streams single placements in roomID until ctx is done
// or the consumer stops. The subscription is registered before it returns.
func (u *PixelUsecase) SubscribePlacements(ctx context.Context, roomID string) (iter.Seq[domain.Pixel], error) {
	sub, stop, err := u.subscribe(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return func(yield func(domain.Pixel) bool) {
		defer stop()
		for ev := range sub.Events(ctx) {
			pixel, ok := ev.Pixel()
			if !ok {
				continue
			}
			if !yield(pixel) {
				return
			}
		}
	}, nil
}

// SubscribeBatches streams batched placements in roomID.
func (u *PixelUsecase) SubscribeBatches(ctx context.Context, roomID string) (iter.Seq[[]domain.Pixel], error) {
	sub, stop, err := u.subscribe(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return func(yield func([]domain.Pixel) bool) {
		defer stop()
		for ev := range sub.Events(ctx) {
			if ev.Type != domain.EventBatch {
				continue
			}
			if !yield(ev.Pixels) {
				return
			}
		}
	}, nil
}

// subscribeRoom registers on the bus while the room is held, so a
// concurrent DeleteRoom either rejects the lookup or closes the subscription.
func (u *PixelUsecase) subscribeRoom(ctx context.Context, roomID string) (*domain.Subscription, error) {
	runlock := u.locks.rlockRoom(roomID)
	defer runlock()

	if _, err := u.room(ctx, roomID); err != nil {
		return nil, err
	}
	return u.bus.Subscribe(roomID), nil
}

func (u *PixelUsecase) subscribe(ctx context.Context, roomID string) (*domain.Subscription, func(), error) {
	sub, err := u.subscribeRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	release := context.AfterFunc(ctx, sub.Cancel)
	return sub, func() {
		release()
		sub.Cancel()
	}, nil
}

// Connect registers a live connection and returns its id.
func (u *PixelUsecase) Connect(remote string, outbound chan<- domain.ChangeEvent) (string, error) {
	connID := ulid.Make().String()
	if err := u.subs.Register(connID, remote, outbound); err != nil {
		return "", fmt.Errorf("failed to register connection: %w", err)
	}
	u.log.WithFields(logrus.Fields{"conn_id": connID, "remote": remote}).Info("connection registered")
	return connID, nil
}

// Watch moves the connection to roomID: its first event is the room
// snapshot, followed by live placements. ctx bounds the connection.
func (u *PixelUsecase) Watch(ctx context.Context, connID, roomID string) error {
	if err := u.watch(ctx, connID, roomID); err != nil {
		return err
	}
	u.log.WithFields(logrus.Fields{"conn_id": connID, "room_id": roomID}).Info("connection joined room")
	return nil
}

func (u *PixelUsecase) watch(ctx context.Context, connID, roomID string) error {
	runlock := u.locks.rlockRoom(roomID)
	defer runlock()

	if _, err := u.room(ctx, roomID); err != nil {
		return err
	}
	return u.subs.Subscribe(ctx, connID, roomID, u.snapshot)
}

// HandleWatchRequest applies one inbound request of a live connection. A
// placement without a room goes to the room the connection has joined.
func (u *PixelUsecase) HandleWatchRequest(ctx context.Context, connID string, actor domain.Actor, req domain.WatchRequest) error {
	if !req.IsValid() {
		return fmt.Errorf("%w: malformed %s request", domain.ErrInvalidRequest, req.Type)
	}
	switch req.Type {
	case domain.RequestJoin:
		return u.Watch(ctx, connID, req.RoomID)
	case domain.RequestLeave:
		u.Leave(connID)
		return nil
	default:
		roomID := req.RoomID
		if roomID == "" {
			conn, ok := u.subs.Connection(connID)
			if !ok {
				return fmt.Errorf("%w: %s", domain.ErrConnectionNotFound, connID)
			}
			if conn.State != domain.StateSubscribed {
				return fmt.Errorf("%w: no room joined", domain.ErrInvalidRequest)
			}
			roomID = conn.RoomID
		}
		p := req.Placement
		_, err := u.PlacePixel(ctx, roomID, p.X, p.Y, p.Color, actor)
		return err
	}
}

func (u *PixelUsecase) Leave(connID string) {
	u.subs.Unsubscribe(connID)
}

func (u *PixelUsecase) Disconnect(connID string) {
	u.subs.Terminate(connID)
	u.log.WithField("conn_id", connID).Info("connection terminated")
}

func (u *PixelUsecase) Stats() Stats {
	return Stats{
		Bus:         u.bus.GetStats(),
		Connections: u.subs.ConnectionCount(),
	}
}

// Shutdown ends every live connection and subscription.
func (u *PixelUsecase) Shutdown() {
	u.subs.TerminateAll()
	u.bus.Close()
}
