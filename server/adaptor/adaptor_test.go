package adaptor

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	pb "github.com/ponyo877/pyxl/grpc"
	"github.com/ponyo877/pyxl/server/auth"
	"github.com/ponyo877/pyxl/server/domain"
	"github.com/ponyo877/pyxl/server/repository"
	"github.com/ponyo877/pyxl/server/usecase"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type harness struct {
	client pb.CanvasServiceClient
	conn   *grpc.ClientConn
	bus    *domain.ChangeBus
	auth   *auth.Authenticator
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, err := repository.Open(filepath.Join(t.TempDir(), "pyxl.db"), 0)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	rooms := repository.NewRoomRepository(db)
	bus := domain.NewChangeBus()
	pixels := usecase.NewPixelUsecase(rooms, repository.NewPixelRepository(db), bus, domain.NewSubscriptionManager(bus))
	roomUC := usecase.NewRoomUsecase(rooms, pixels)

	authenticator, err := auth.NewAuthenticator("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("authenticator: %v", err)
	}
	srv, _ := NewServer(NewAdaptor(pixels, roomUC), authenticator)
	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		pixels.Shutdown()
		srv.Stop()
		db.Close()
	})
	return &harness{
		client: pb.NewCanvasServiceClient(conn),
		conn:   conn,
		bus:    bus,
		auth:   authenticator,
	}
}

func (h *harness) as(t *testing.T, ctx context.Context, actor string) context.Context {
	t.Helper()
	token, err := h.auth.Issue(actor)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func (h *harness) createRoom(t *testing.T, ctx context.Context) *pb.Room {
	t.Helper()
	res, err := h.client.CreateRoom(h.as(t, ctx, "owner"), &pb.CreateRoomRequest{
		Name:    "demo",
		Width:   10,
		Height:  10,
		Palette: []string{"#000000", "#FFFFFF"},
	})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	return res.GetRoom()
}

func (h *harness) waitSubscribers(t *testing.T, roomID string, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for h.bus.SubscriberCount(roomID) < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d subscribers on %s", n, roomID)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPlaceAndGetPixels(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	h := newHarness(t)
	room := h.createRoom(t, ctx)

	res, err := h.client.PlacePixel(h.as(t, ctx, "u1"), &pb.PlacePixelRequest{RoomId: room.Id, X: 3, Y: 4, Color: "#FFFFFF"})
	if err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}
	if p := res.GetPixel(); p.AuthorId != "u1" || p.Color != "#FFFFFF" {
		t.Fatalf("placed %+v", p)
	}

	got, err := h.client.GetPixels(ctx, &pb.RoomRequest{RoomId: room.Id})
	if err != nil {
		t.Fatalf("GetPixels: %v", err)
	}
	if len(got.GetPixels()) != 1 || got.Pixels[0].X != 3 || got.Pixels[0].Y != 4 {
		t.Fatalf("GetPixels = %+v", got.GetPixels())
	}
}

func TestErrorCodes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	h := newHarness(t)
	room := h.createRoom(t, ctx)
	authed := h.as(t, ctx, "u1")

	tests := []struct {
		name string
		ctx  context.Context
		req  *pb.PlacePixelRequest
		want codes.Code
	}{
		{"anonymous", ctx, &pb.PlacePixelRequest{RoomId: room.Id, X: 1, Y: 1, Color: "#000000"}, codes.Unauthenticated},
		{"bad token", metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer nope"), &pb.PlacePixelRequest{RoomId: room.Id, X: 1, Y: 1, Color: "#000000"}, codes.Unauthenticated},
		{"out of bounds", authed, &pb.PlacePixelRequest{RoomId: room.Id, X: 50, Y: 50, Color: "#000000"}, codes.InvalidArgument},
		{"negative", authed, &pb.PlacePixelRequest{RoomId: room.Id, X: -1, Y: 0, Color: "#000000"}, codes.InvalidArgument},
		{"invalid color", authed, &pb.PlacePixelRequest{RoomId: room.Id, X: 1, Y: 1, Color: "#FF00FF"}, codes.InvalidArgument},
		{"unknown room", authed, &pb.PlacePixelRequest{RoomId: "missing", X: 1, Y: 1, Color: "#000000"}, codes.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.client.PlacePixel(tt.ctx, tt.req)
			if got := status.Code(err); got != tt.want {
				t.Fatalf("code = %v (%v); want %v", got, err, tt.want)
			}
		})
	}

	if _, err := h.client.CreateRoom(ctx, &pb.CreateRoomRequest{Name: "anon"}); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("anonymous CreateRoom: %v; want Unauthenticated", err)
	}
	if _, err := h.client.CreateRoom(authed, &pb.CreateRoomRequest{Name: "demo"}); status.Code(err) != codes.AlreadyExists {
		t.Fatalf("duplicate CreateRoom: %v; want AlreadyExists", err)
	}
}

func TestSubscribePlacements(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	h := newHarness(t)
	room := h.createRoom(t, ctx)

	stream, err := h.client.SubscribePlacements(ctx, &pb.RoomRequest{RoomId: room.Id})
	if err != nil {
		t.Fatalf("SubscribePlacements: %v", err)
	}
	h.waitSubscribers(t, room.Id, 1)

	if _, err := h.client.PlacePixel(h.as(t, ctx, "u1"), &pb.PlacePixelRequest{RoomId: room.Id, X: 2, Y: 2, Color: "#000000"}); err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}
	got, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if got.X != 2 || got.Y != 2 || got.AuthorId != "u1" {
		t.Fatalf("received %+v", got)
	}
}

func TestSubscribeBatches(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	h := newHarness(t)
	room := h.createRoom(t, ctx)

	stream, err := h.client.SubscribeBatches(ctx, &pb.RoomRequest{RoomId: room.Id})
	if err != nil {
		t.Fatalf("SubscribeBatches: %v", err)
	}
	h.waitSubscribers(t, room.Id, 1)

	_, err = h.client.PlacePixels(h.as(t, ctx, "u1"), &pb.PlacePixelsRequest{
		RoomId: room.Id,
		Placements: []*pb.Placement{
			{X: 0, Y: 0, Color: "#000000"},
			{X: 1, Y: 0, Color: "#FFFFFF"},
		},
	})
	if err != nil {
		t.Fatalf("PlacePixels: %v", err)
	}
	got, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if len(got.GetPixels()) != 2 {
		t.Fatalf("batch has %d pixels; want 2", len(got.GetPixels()))
	}
}

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	h := newHarness(t)
	room := h.createRoom(t, ctx)
	authed := h.as(t, ctx, "u1")

	if _, err := h.client.PlacePixel(authed, &pb.PlacePixelRequest{RoomId: room.Id, X: 1, Y: 1, Color: "#000000"}); err != nil {
		t.Fatalf("PlacePixel: %v", err)
	}

	stream, err := h.client.Watch(authed)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	recv := func(want pb.WatchEvent_Type) *pb.WatchEvent {
		t.Helper()
		ev, err := stream.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		if ev.GetType() != want {
			t.Fatalf("event %v (%s); want %v", ev.GetType(), ev.Message, want)
		}
		return ev
	}

	if err := stream.Send(&pb.WatchRequest{Type: pb.WatchRequest_JOIN, RoomId: room.Id}); err != nil {
		t.Fatalf("Send join: %v", err)
	}
	if snap := recv(pb.WatchEvent_SNAPSHOT); len(snap.GetPixels()) != 1 {
		t.Fatalf("snapshot has %d pixels; want 1", len(snap.GetPixels()))
	}

	if err := stream.Send(&pb.WatchRequest{Type: pb.WatchRequest_PLACE, Placement: &pb.Placement{X: 5, Y: 5, Color: "#FFFFFF"}}); err != nil {
		t.Fatalf("Send place: %v", err)
	}
	if ev := recv(pb.WatchEvent_PIXEL); ev.Pixels[0].X != 5 || ev.Pixels[0].AuthorId != "u1" {
		t.Fatalf("pixel event %+v", ev.Pixels[0])
	}

	if err := stream.Send(&pb.WatchRequest{Type: pb.WatchRequest_PLACE, Placement: &pb.Placement{X: 5, Y: 5, Color: "#123456"}}); err != nil {
		t.Fatalf("Send place: %v", err)
	}
	recv(pb.WatchEvent_ERROR)

	if _, err := h.client.DeleteRoom(authed, &pb.RoomRequest{RoomId: room.Id}); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	recv(pb.WatchEvent_CLOSED)

	if err := stream.CloseSend(); err != nil {
		t.Fatalf("CloseSend: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	h := newHarness(t)
	res, err := healthpb.NewHealthClient(h.conn).Check(ctx, &healthpb.HealthCheckRequest{Service: pb.CanvasService_ServiceDesc.ServiceName})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("status = %v; want SERVING", res.GetStatus())
	}
}
