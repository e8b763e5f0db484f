package adaptor

import (
	"context"
	"errors"
	"io"

	pb "github.com/ponyo877/pyxl/grpc"
	"github.com/ponyo877/pyxl/server/domain"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

const watchBuffer = 64

type Adaptor struct {
	pixels PixelUsecase
	rooms  RoomUsecase
	log    *logrus.Entry
	pb.UnimplementedCanvasServiceServer
}

func NewAdaptor(pixels PixelUsecase, rooms RoomUsecase) *Adaptor {
	return &Adaptor{
		pixels: pixels,
		rooms:  rooms,
		log:    logrus.WithField("component", "grpc"),
	}
}

func (a *Adaptor) fail(method string, err error) error {
	st := toStatus(err)
	entry := a.log.WithField("method", method).WithError(err)
	if status.Code(st) == codes.Internal {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	return st
}

func (a *Adaptor) CreateRoom(ctx context.Context, in *pb.CreateRoomRequest) (*pb.CreateRoomResponse, error) {
	if domain.ActorFromContext(ctx).IsAnonymous() {
		return nil, a.fail("CreateRoom", domain.ErrUnauthorized)
	}
	room, err := a.rooms.CreateRoom(ctx, in.Name, int(in.Width), int(in.Height), toDomainPalette(in.Palette))
	if err != nil {
		return nil, a.fail("CreateRoom", err)
	}
	return &pb.CreateRoomResponse{Room: toPbRoom(room)}, nil
}

func (a *Adaptor) ListRooms(ctx context.Context, in *pb.ListRoomsRequest) (*pb.ListRoomsResponse, error) {
	rooms, err := a.rooms.ListRooms(ctx)
	if err != nil {
		return nil, a.fail("ListRooms", err)
	}
	out := make([]*pb.Room, len(rooms))
	for i, room := range rooms {
		out[i] = toPbRoom(room)
	}
	return &pb.ListRoomsResponse{Rooms: out}, nil
}

func (a *Adaptor) DeleteRoom(ctx context.Context, in *pb.RoomRequest) (*pb.DeleteRoomResponse, error) {
	if domain.ActorFromContext(ctx).IsAnonymous() {
		return nil, a.fail("DeleteRoom", domain.ErrUnauthorized)
	}
	if err := a.rooms.DeleteRoom(ctx, in.GetRoomId()); err != nil {
		return nil, a.fail("DeleteRoom", err)
	}
	return &pb.DeleteRoomResponse{}, nil
}

func (a *Adaptor) PlacePixel(ctx context.Context, in *pb.PlacePixelRequest) (*pb.PlacePixelResponse, error) {
	pixel, err := a.pixels.PlacePixel(ctx, in.RoomId, int(in.X), int(in.Y), domain.Color(in.Color), domain.ActorFromContext(ctx))
	if err != nil {
		return nil, a.fail("PlacePixel", err)
	}
	return &pb.PlacePixelResponse{Pixel: toPbPixel(pixel)}, nil
}

func (a *Adaptor) PlacePixels(ctx context.Context, in *pb.PlacePixelsRequest) (*pb.PixelList, error) {
	pixels, err := a.pixels.PlacePixels(ctx, in.RoomId, toDomainPlacements(in.Placements), domain.ActorFromContext(ctx))
	if err != nil {
		return nil, a.fail("PlacePixels", err)
	}
	return &pb.PixelList{Pixels: toPbPixels(pixels)}, nil
}

func (a *Adaptor) GetPixels(ctx context.Context, in *pb.RoomRequest) (*pb.PixelList, error) {
	pixels, err := a.pixels.GetPixels(ctx, in.GetRoomId())
	if err != nil {
		return nil, a.fail("GetPixels", err)
	}
	return &pb.PixelList{Pixels: toPbPixels(pixels)}, nil
}

// errStreamEnded is returned when a subscription stops while the client
// is still listening: the room was deleted or the server is shutting down.
var errStreamEnded = status.Error(codes.Unavailable, "subscription ended")

func (a *Adaptor) SubscribePlacements(in *pb.RoomRequest, stream grpc.ServerStreamingServer[pb.Pixel]) error {
	ctx := stream.Context()
	placements, err := a.pixels.SubscribePlacements(ctx, in.GetRoomId())
	if err != nil {
		return a.fail("SubscribePlacements", err)
	}
	for pixel := range placements {
		if err := stream.Send(toPbPixel(pixel)); err != nil {
			return err
		}
	}
	if ctx.Err() != nil {
		return toStatus(ctx.Err())
	}
	return errStreamEnded
}

func (a *Adaptor) SubscribeBatches(in *pb.RoomRequest, stream grpc.ServerStreamingServer[pb.PixelList]) error {
	ctx := stream.Context()
	batches, err := a.pixels.SubscribeBatches(ctx, in.GetRoomId())
	if err != nil {
		return a.fail("SubscribeBatches", err)
	}
	for batch := range batches {
		if err := stream.Send(&pb.PixelList{Pixels: toPbPixels(batch)}); err != nil {
			return err
		}
	}
	if ctx.Err() != nil {
		return toStatus(ctx.Err())
	}
	return errStreamEnded
}

// Watch serves one live connection. JOIN moves it to a room and streams the
// snapshot followed by live placements. Rejected requests are answered with
// an ERROR event and the stream stays open.
func (a *Adaptor) Watch(stream grpc.BidiStreamingServer[pb.WatchRequest, pb.WatchEvent]) error {
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	remote := "unknown"
	if p, ok := peer.FromContext(ctx); ok {
		remote = p.Addr.String()
	}
	outbound := make(chan domain.ChangeEvent, watchBuffer)
	replies := make(chan *pb.WatchEvent, watchBuffer)

	connID, err := a.pixels.Connect(remote, outbound)
	if err != nil {
		return a.fail("Watch", err)
	}
	defer a.pixels.Disconnect(connID)
	log := a.log.WithFields(logrus.Fields{"conn_id": connID, "remote": remote})

	sendErr := make(chan error, 1)
	go func() {
		sendErr <- a.sendLoop(ctx, stream, outbound, replies)
		cancel()
	}()

	actor := domain.ActorFromContext(ctx)
	for {
		in, err := stream.Recv()
		if err != nil {
			cancel()
			if errors.Is(err, io.EOF) {
				log.Info("client disconnected normally")
				return nil
			}
			if s := <-sendErr; s != nil {
				return s
			}
			log.WithError(err).Info("client disconnected with error")
			return err
		}

		req, err := toDomainWatchRequest(in)
		if err == nil {
			err = a.pixels.HandleWatchRequest(ctx, connID, actor, req)
		}
		if err != nil {
			ev := errorEvent(in.RoomId, status.Convert(toStatus(err)).Message())
			select {
			case replies <- ev:
			case <-ctx.Done():
			}
		}
	}
}

// sendLoop is the only writer to stream.
func (a *Adaptor) sendLoop(ctx context.Context, stream grpc.BidiStreamingServer[pb.WatchRequest, pb.WatchEvent], outbound <-chan domain.ChangeEvent, replies <-chan *pb.WatchEvent) error {
	for {
		var ev *pb.WatchEvent
		select {
		case <-ctx.Done():
			return nil
		case e := <-outbound:
			ev = toPbEvent(e)
		case ev = <-replies:
		}
		if err := stream.Send(ev); err != nil {
			return err
		}
	}
}
