package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ponyo877/pyxl/server/domain"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 35 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 256
)

type inFrame struct {
	Type   string `json:"type"`
	RoomID string `json:"room_id,omitempty"`
	X      *int   `json:"x,omitempty"`
	Y      *int   `json:"y,omitempty"`
	Color  string `json:"color,omitempty"`
}

type outFrame struct {
	Type    string      `json:"type"`
	RoomID  string      `json:"room_id,omitempty"`
	Pixels  []pixelJSON `json:"pixels,omitempty"`
	Message string      `json:"message,omitempty"`
}

func toOutFrame(ev domain.ChangeEvent) outFrame {
	out := outFrame{
		Type:   ev.Type.String(),
		RoomID: ev.RoomID,
		Pixels: toPixelJSON(ev.Pixels),
	}
	if ev.Err != nil {
		out.Message = ev.Err.Error()
	}
	return out
}

func (f inFrame) request() (domain.WatchRequest, error) {
	t, ok := domain.ParseWatchRequestType(f.Type)
	if !ok {
		return domain.WatchRequest{}, domain.ErrInvalidRequest
	}
	switch t {
	case domain.RequestJoin:
		return domain.NewJoinRequest(f.RoomID), nil
	case domain.RequestLeave:
		return domain.NewLeaveRequest(), nil
	default:
		if f.X == nil || f.Y == nil {
			return domain.WatchRequest{}, fmt.Errorf("%w: place needs x and y", domain.ErrInvalidRequest)
		}
		return domain.NewPlaceRequest(f.RoomID, domain.Placement{X: *f.X, Y: *f.Y, Color: domain.Color(f.Color)}), nil
	}
}

type wsSession struct {
	h        *Handler
	conn     *websocket.Conn
	connID   string
	actor    domain.Actor
	outbound chan domain.ChangeEvent
	replies  chan outFrame
	log      *logrus.Entry
}

func (h *Handler) serveWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	s := &wsSession{
		h:        h,
		conn:     conn,
		actor:    actorOf(c),
		outbound: make(chan domain.ChangeEvent, sendBuffer),
		replies:  make(chan outFrame, sendBuffer),
	}
	s.connID, err = h.pixels.Connect(conn.RemoteAddr().String(), s.outbound)
	if err != nil {
		h.log.WithError(err).Error("failed to register websocket")
		conn.Close()
		return
	}
	s.log = h.log.WithFields(logrus.Fields{"conn_id": s.connID, "actor": s.actor.String()})

	ctx, cancel := context.WithCancel(h.base)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.writePump(ctx)
	}()
	s.readPump(ctx)

	cancel()
	<-done
	h.pixels.Disconnect(s.connID)
	conn.Close()
}

func (s *wsSession) readPump(ctx context.Context) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var frame inFrame
		if err := s.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.WithError(err).Warn("websocket read error")
			}
			return
		}
		req, err := frame.request()
		if err == nil {
			err = s.h.pixels.HandleWatchRequest(ctx, s.connID, s.actor, req)
		}
		if err != nil {
			_, msg := httpStatus(err)
			select {
			case s.replies <- outFrame{Type: "error", RoomID: frame.RoomID, Message: msg}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// writePump is the only writer to the connection.
func (s *wsSession) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(frame outFrame) bool {
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := s.conn.WriteJSON(frame); err != nil {
			s.log.WithError(err).Debug("websocket write failed")
			return false
		}
		return true
	}

	for {
		select {
		case ev := <-s.outbound:
			if !write(toOutFrame(ev)) {
				return
			}
		case frame := <-s.replies:
			if !write(frame) {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			if errors.Is(context.Cause(s.h.base), context.Canceled) {
				msg = websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			}
			_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			// Unblock readPump when the server initiated the close.
			_ = s.conn.SetReadDeadline(time.Now())
			return
		}
	}
}
