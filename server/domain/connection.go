package domain

import (
	"context"
	"time"
)

type ConnectionState int

const (
	StateConnected ConnectionState = iota
	StateSubscribed
	StateTerminated
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateSubscribed:
		return "subscribed"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Connection describes one live viewer as seen by the SubscriptionManager.
type Connection struct {
	ID          string
	Remote      string
	RoomID      string
	State       ConnectionState
	ConnectedAt time.Time
}

func (c Connection) String() string {
	if c.State == StateSubscribed {
		return c.ID + "@" + c.RoomID + "(" + c.State.String() + ")"
	}
	return c.ID + "(" + c.State.String() + ")"
}

// PrimeFunc runs after a connection's new subscription is registered and
// before live events flow. Its returned event, typically a snapshot, is sent
// to the connection first.
type PrimeFunc func(ctx context.Context, sub *Subscription) (ChangeEvent, error)
