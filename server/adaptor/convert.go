package adaptor

import (
	"fmt"

	pb "github.com/ponyo877/pyxl/grpc"
	"github.com/ponyo877/pyxl/server/domain"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toPbRoom(room domain.Room) *pb.Room {
	palette := make([]string, len(room.Palette))
	for i, c := range room.Palette {
		palette[i] = string(c)
	}
	return &pb.Room{
		Id:      room.ID,
		Name:    room.Name,
		Width:   int64(room.Width),
		Height:  int64(room.Height),
		Palette: palette,
		Created: timestamppb.New(room.CreatedAt),
	}
}

func toPbPixel(p domain.Pixel) *pb.Pixel {
	return &pb.Pixel{
		X:        int64(p.X),
		Y:        int64(p.Y),
		Color:    string(p.Color),
		AuthorId: p.AuthorID,
	}
}

func toPbPixels(pixels []domain.Pixel) []*pb.Pixel {
	out := make([]*pb.Pixel, len(pixels))
	for i, p := range pixels {
		out[i] = toPbPixel(p)
	}
	return out
}

func toDomainPlacements(in []*pb.Placement) []domain.Placement {
	out := make([]domain.Placement, len(in))
	for i, p := range in {
		out[i] = domain.Placement{X: int(p.X), Y: int(p.Y), Color: domain.Color(p.Color)}
	}
	return out
}

func toDomainPalette(in []string) domain.Palette {
	if len(in) == 0 {
		return nil
	}
	out := make(domain.Palette, len(in))
	for i, c := range in {
		out[i] = domain.Color(c)
	}
	return out
}

func toPbEvent(ev domain.ChangeEvent) *pb.WatchEvent {
	out := &pb.WatchEvent{
		RoomId: ev.RoomID,
		Pixels: toPbPixels(ev.Pixels),
		Sent:   timestamppb.New(ev.Timestamp),
	}
	switch ev.Type {
	case domain.EventSnapshot:
		out.Type = pb.WatchEvent_SNAPSHOT
	case domain.EventPixel:
		out.Type = pb.WatchEvent_PIXEL
	case domain.EventBatch:
		out.Type = pb.WatchEvent_BATCH
	case domain.EventClosed:
		out.Type = pb.WatchEvent_CLOSED
		if ev.Err != nil {
			out.Message = ev.Err.Error()
		}
	}
	return out
}

func errorEvent(roomID, message string) *pb.WatchEvent {
	return &pb.WatchEvent{
		Type:    pb.WatchEvent_ERROR,
		RoomId:  roomID,
		Message: message,
	}
}

func toDomainWatchRequest(in *pb.WatchRequest) (domain.WatchRequest, error) {
	switch in.Type {
	case pb.WatchRequest_JOIN:
		return domain.NewJoinRequest(in.RoomId), nil
	case pb.WatchRequest_LEAVE:
		return domain.NewLeaveRequest(), nil
	case pb.WatchRequest_PLACE:
		p := in.GetPlacement()
		if p == nil {
			return domain.WatchRequest{}, fmt.Errorf("%w: placement is required", domain.ErrInvalidRequest)
		}
		return domain.NewPlaceRequest(in.RoomId, domain.Placement{X: int(p.X), Y: int(p.Y), Color: domain.Color(p.Color)}), nil
	default:
		return domain.WatchRequest{}, fmt.Errorf("%w: unknown request type %d", domain.ErrInvalidRequest, in.Type)
	}
}
