package domain

import "strconv"

type WatchRequestType int

const (
	RequestJoin WatchRequestType = iota
	RequestLeave
	RequestPlace
)

func (t WatchRequestType) String() string {
	switch t {
	case RequestJoin:
		return "join"
	case RequestLeave:
		return "leave"
	case RequestPlace:
		return "place"
	default:
		return "unknown"
	}
}

func ParseWatchRequestType(s string) (WatchRequestType, bool) {
	switch s {
	case "join":
		return RequestJoin, true
	case "leave":
		return RequestLeave, true
	case "place":
		return RequestPlace, true
	default:
		return 0, false
	}
}

// WatchRequest is one inbound message on a live connection.
type WatchRequest struct {
	Type      WatchRequestType
	RoomID    string
	Placement Placement
}

func NewJoinRequest(roomID string) WatchRequest {
	return WatchRequest{Type: RequestJoin, RoomID: roomID}
}

func NewLeaveRequest() WatchRequest {
	return WatchRequest{Type: RequestLeave}
}

func NewPlaceRequest(roomID string, placement Placement) WatchRequest {
	return WatchRequest{Type: RequestPlace, RoomID: roomID, Placement: placement}
}

func (r WatchRequest) IsValid() bool {
	switch r.Type {
	case RequestJoin:
		return r.RoomID != ""
	case RequestLeave:
		return true
	case RequestPlace:
		return r.Placement.Color != ""
	default:
		return false
	}
}

func (r WatchRequest) String() string {
	switch r.Type {
	case RequestJoin:
		return r.Type.String() + ": " + r.RoomID
	case RequestPlace:
		return r.Type.String() + ": " + r.RoomID + " (" + strconv.Itoa(r.Placement.X) + "," + strconv.Itoa(r.Placement.Y) + ") " + string(r.Placement.Color)
	default:
		return r.Type.String()
	}
}
