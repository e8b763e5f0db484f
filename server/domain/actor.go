package domain

import (
	"context"
	"strings"
)

// Actor is the authenticated identity placing pixels. The zero value is anonymous.
type Actor struct {
	ID string
}

func NewActor(id string) Actor {
	return Actor{ID: strings.TrimSpace(id)}
}

func (a Actor) IsAnonymous() bool {
	return a.ID == ""
}

func (a Actor) String() string {
	if a.IsAnonymous() {
		return "anonymous"
	}
	return a.ID
}

type actorKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor attached by the transport, or anonymous.
func ActorFromContext(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey{}).(Actor)
	return actor
}
