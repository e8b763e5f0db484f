package domain

import (
	"strconv"
	"time"
)

type ChangeEventType int

const (
	EventPixel ChangeEventType = iota
	EventBatch
	EventSnapshot
	EventClosed
)

func (t ChangeEventType) String() string {
	switch t {
	case EventPixel:
		return "pixel"
	case EventBatch:
		return "batch"
	case EventSnapshot:
		return "snapshot"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ChangeEvent is the single tagged record flowing from the bus to viewers.
// EventPixel carries exactly one pixel; EventBatch and EventSnapshot carry
// any number; EventClosed carries none.
type ChangeEvent struct {
	Type      ChangeEventType
	RoomID    string
	Pixels    []Pixel
	Timestamp time.Time
	Err       error
}

func NewPixelEvent(roomID string, pixel Pixel) ChangeEvent {
	return ChangeEvent{
		Type:      EventPixel,
		RoomID:    roomID,
		Pixels:    []Pixel{pixel},
		Timestamp: time.Now(),
	}
}

func NewBatchEvent(roomID string, pixels []Pixel) ChangeEvent {
	return ChangeEvent{
		Type:      EventBatch,
		RoomID:    roomID,
		Pixels:    append([]Pixel(nil), pixels...),
		Timestamp: time.Now(),
	}
}

func NewSnapshotEvent(roomID string, pixels []Pixel) ChangeEvent {
	return ChangeEvent{
		Type:      EventSnapshot,
		RoomID:    roomID,
		Pixels:    pixels,
		Timestamp: time.Now(),
	}
}

func NewClosedEvent(roomID string, err error) ChangeEvent {
	return ChangeEvent{
		Type:      EventClosed,
		RoomID:    roomID,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Pixel returns the single pixel of an EventPixel.
func (e ChangeEvent) Pixel() (Pixel, bool) {
	if e.Type != EventPixel || len(e.Pixels) != 1 {
		return Pixel{}, false
	}
	return e.Pixels[0], true
}

func (e ChangeEvent) IsValid() bool {
	switch e.Type {
	case EventPixel:
		return e.RoomID != "" && len(e.Pixels) == 1
	case EventBatch, EventSnapshot:
		return e.RoomID != ""
	case EventClosed:
		return true
	default:
		return false
	}
}

func (e ChangeEvent) String() string {
	if e.Type == EventClosed && e.Err != nil {
		return e.Type.String() + ": " + e.Err.Error()
	}
	return e.Type.String() + ": " + e.RoomID + " (" + strconv.Itoa(len(e.Pixels)) + " pixels)"
}
