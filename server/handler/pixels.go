package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ponyo877/pyxl/server/domain"
)

type pixelJSON struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Color    string `json:"color"`
	AuthorID string `json:"author_id,omitempty"`
}

type roomJSON struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Palette []string `json:"palette"`
}

// placeBody accepts either a single placement or a batch.
type placeBody struct {
	X          *int        `json:"x"`
	Y          *int        `json:"y"`
	Color      string      `json:"color"`
	Placements []pixelJSON `json:"placements"`
}

func toPixelJSON(pixels []domain.Pixel) []pixelJSON {
	out := make([]pixelJSON, len(pixels))
	for i, p := range pixels {
		out[i] = pixelJSON{X: p.X, Y: p.Y, Color: string(p.Color), AuthorID: p.AuthorID}
	}
	return out
}

func toRoomJSON(r domain.Room) roomJSON {
	palette := make([]string, len(r.Palette))
	for i, color := range r.Palette {
		palette[i] = string(color)
	}
	return roomJSON{ID: r.ID, Name: r.Name, Width: r.Width, Height: r.Height, Palette: palette}
}

func (h *Handler) listRooms(c *gin.Context) {
	rooms, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]roomJSON, len(rooms))
	for i, r := range rooms {
		out[i] = toRoomJSON(r)
	}
	c.JSON(http.StatusOK, gin.H{"rooms": out})
}

func (h *Handler) getRoom(c *gin.Context) {
	room, err := h.rooms.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomJSON(room))
}

func (h *Handler) getPixels(c *gin.Context) {
	pixels, err := h.pixels.GetPixels(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pixels": toPixelJSON(pixels)})
}

func (h *Handler) placePixels(c *gin.Context) {
	var body placeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx := c.Request.Context()
	roomID := c.Param("id")
	actor := actorOf(c)

	if len(body.Placements) > 0 {
		placements := make([]domain.Placement, len(body.Placements))
		for i, p := range body.Placements {
			placements[i] = domain.Placement{X: p.X, Y: p.Y, Color: domain.Color(p.Color)}
		}
		pixels, err := h.pixels.PlacePixels(ctx, roomID, placements, actor)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"pixels": toPixelJSON(pixels)})
		return
	}

	if body.X == nil || body.Y == nil || body.Color == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "x, y and color are required"})
		return
	}
	pixel, err := h.pixels.PlacePixel(ctx, roomID, *body.X, *body.Y, domain.Color(body.Color), actor)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pixel": toPixelJSON([]domain.Pixel{pixel})[0]})
}
