package adaptor

import (
	"context"
	"errors"

	"github.com/ponyo877/pyxl/server/auth"
	"github.com/ponyo877/pyxl/server/domain"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// authenticate attaches the caller's actor to ctx. Requests without a token
// stay anonymous; a token that fails verification is rejected outright.
func authenticate(ctx context.Context, verifier TokenVerifier) (context.Context, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get("authorization")
	if len(values) == 0 {
		return ctx, nil
	}
	actor, err := verifier.VerifyHeader(values[0])
	if err != nil {
		if errors.Is(err, auth.ErrMissingToken) {
			return ctx, nil
		}
		return nil, toStatus(err)
	}
	return domain.WithActor(ctx, actor), nil
}

func UnaryAuthInterceptor(verifier TokenVerifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, err := authenticate(ctx, verifier)
		if err != nil {
			logrus.WithField("method", info.FullMethod).WithError(err).Warn("rejected token")
			return nil, err
		}
		return handler(ctx, req)
	}
}

type authStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authStream) Context() context.Context {
	return s.ctx
}

func StreamAuthInterceptor(verifier TokenVerifier) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, err := authenticate(ss.Context(), verifier)
		if err != nil {
			logrus.WithField("method", info.FullMethod).WithError(err).Warn("rejected token")
			return err
		}
		return handler(srv, &authStream{ServerStream: ss, ctx: ctx})
	}
}
