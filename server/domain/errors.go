package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrOutOfBounds          = errors.New("out of bounds")
	ErrInvalidColor         = errors.New("invalid color")
	ErrSubscriptionClosed   = errors.New("subscription closed")
	ErrSubscriberOverflow   = errors.New("subscriber fell too far behind")
	ErrConnectionNotFound   = errors.New("connection not found")
	ErrConnectionTerminated = errors.New("connection terminated")
	ErrRoomExists           = errors.New("room already exists")
	ErrInvalidRoom          = errors.New("invalid room")
	ErrBatchTooLarge        = errors.New("batch too large")
	ErrInvalidRequest       = errors.New("invalid request")
)

type RejectReason int

const (
	RejectUnauthorized RejectReason = iota + 1
	RejectOutOfBounds
	RejectInvalidColor
)

func (r RejectReason) String() string {
	switch r {
	case RejectUnauthorized:
		return "unauthorized"
	case RejectOutOfBounds:
		return "out_of_bounds"
	case RejectInvalidColor:
		return "invalid_color"
	default:
		return "unknown"
	}
}

func (r RejectReason) sentinel() error {
	switch r {
	case RejectUnauthorized:
		return ErrUnauthorized
	case RejectOutOfBounds:
		return ErrOutOfBounds
	case RejectInvalidColor:
		return ErrInvalidColor
	default:
		return nil
	}
}

// ValidationError rejects a placement without changing any state.
type ValidationError struct {
	Reason RejectReason
	X, Y   int
	Color  Color
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case RejectOutOfBounds:
		return fmt.Sprintf("placement rejected: (%d,%d) is out of bounds", e.X, e.Y)
	case RejectInvalidColor:
		return fmt.Sprintf("placement rejected: color %q is not in the room palette", e.Color)
	default:
		return "placement rejected: " + e.Reason.String()
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Reason.sentinel()
}

// StorageError reports an I/O failure of a single store operation.
type StorageError struct {
	Op     string
	RoomID string
	Err    error
}

func (e *StorageError) Error() string {
	if e.RoomID == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s room %s: %v", e.Op, e.RoomID, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op, roomID string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, RoomID: roomID, Err: err}
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
