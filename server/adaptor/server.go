package adaptor

import (
	pb "github.com/ponyo877/pyxl/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NewServer builds a gRPC server exposing the canvas service together with
// health checking and reflection.
func NewServer(a *Adaptor, verifier TokenVerifier, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append(opts,
		grpc.ChainUnaryInterceptor(UnaryAuthInterceptor(verifier)),
		grpc.ChainStreamInterceptor(StreamAuthInterceptor(verifier)),
	)
	s := grpc.NewServer(opts...)
	pb.RegisterCanvasServiceServer(s, a)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(pb.CanvasService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(s)
	return s, hs
}
