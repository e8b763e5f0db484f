package adaptor

import (
	"context"
	"errors"

	"github.com/ponyo877/pyxl/server/auth"
	"github.com/ponyo877/pyxl/server/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain errors onto gRPC codes. Storage failures are
// reported without their cause.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, domain.ErrOutOfBounds),
		errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrInvalidRoom),
		errors.Is(err, domain.ErrBatchTooLarge),
		errors.Is(err, domain.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrConnectionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrRoomExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case domain.IsStorageError(err):
		return status.Error(codes.Internal, "storage failure")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
