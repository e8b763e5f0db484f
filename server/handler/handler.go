package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ponyo877/pyxl/server/auth"
	"github.com/ponyo877/pyxl/server/domain"
	"github.com/sirupsen/logrus"
)

const actorKey = "actor"

type Handler struct {
	pixels   PixelUsecase
	rooms    RoomUsecase
	verifier TokenVerifier
	upgrader websocket.Upgrader
	log      *logrus.Entry

	// base is cancelled by Shutdown to close every live WebSocket.
	base context.Context
	stop context.CancelFunc
}

func NewHandler(pixels PixelUsecase, rooms RoomUsecase, verifier TokenVerifier) *Handler {
	base, stop := context.WithCancel(context.Background())
	return &Handler{
		pixels:   pixels,
		rooms:    rooms,
		verifier: verifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log:  logrus.WithField("component", "http"),
		base: base,
		stop: stop,
	}
}

// Router wires every HTTP route.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.accessLog())

	r.GET("/healthz", h.health)
	api := r.Group("/", h.authenticate())
	api.GET("/rooms", h.listRooms)
	api.GET("/rooms/:id", h.getRoom)
	api.GET("/rooms/:id/pixels", h.getPixels)
	api.POST("/rooms/:id/pixels", h.placePixels)
	api.GET("/ws", h.serveWS)
	return r
}

// Shutdown closes live WebSocket sessions with a going-away frame.
func (h *Handler) Shutdown() {
	h.stop()
}

func (h *Handler) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		h.log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"status": c.Writer.Status(),
		}).Debug("request served")
	}
}

// authenticate attaches an actor when a valid token is presented. The
// token may also come from the "token" query parameter since browsers
// cannot set headers on WebSocket upgrades.
func (h *Handler) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if token := c.Query("token"); token != "" {
				header = "Bearer " + token
			}
		}
		actor, err := h.verifier.VerifyHeader(header)
		switch {
		case errors.Is(err, auth.ErrMissingToken):
		case err != nil:
			h.log.WithError(err).Warn("rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		default:
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

func actorOf(c *gin.Context) domain.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(domain.Actor); ok {
			return actor
		}
	}
	return domain.Actor{}
}

func (h *Handler) health(c *gin.Context) {
	st := h.pixels.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"rooms":         st.Bus.ActiveRooms,
		"subscriptions": st.Bus.ActiveSubscriptions,
		"connections":   st.Connections,
		"published":     st.Bus.TotalPublished,
		"dropped":       st.Bus.TotalDropped,
		"uptime":        st.Bus.Uptime,
	})
}

// httpStatus maps domain errors onto HTTP status codes.
func httpStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrOutOfBounds),
		errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrBatchTooLarge),
		errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, err.Error()
	case domain.IsStorageError(err):
		return http.StatusInternalServerError, "storage failure"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	code, msg := httpStatus(err)
	if code == http.StatusInternalServerError {
		h.log.WithField("path", c.FullPath()).WithError(err).Error("request failed")
	}
	c.JSON(code, gin.H{"error": msg})
}
