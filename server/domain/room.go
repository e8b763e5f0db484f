package domain

import (
	"fmt"
	"regexp"
	"time"
)

const (
	DefaultRoomWidth  = 100
	DefaultRoomHeight = 100
	MaxRoomSide       = 4096
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// DefaultPalette is used for rooms created without an explicit palette.
var DefaultPalette = Palette{
	"#000000",
	"#FFFFFF",
	"#E4E4E4",
	"#888888",
	"#22234A",
	"#FFA7D1",
	"#E50000",
	"#E59500",
	"#A06A42",
	"#E5D900",
	"#94E044",
	"#02BE01",
	"#00E5F0",
	"#0083C7",
	"#0000EA",
	"#E04AFF",
}

type Color string

func (c Color) IsValid() bool {
	return colorPattern.MatchString(string(c))
}

// Palette is an ordered set of colors. Membership is exact string match.
type Palette []Color

func (p Palette) Contains(c Color) bool {
	for _, candidate := range p {
		if candidate == c {
			return true
		}
	}
	return false
}

func (p Palette) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: palette must not be empty", ErrInvalidRoom)
	}
	seen := make(map[Color]struct{}, len(p))
	for _, c := range p {
		if !c.IsValid() {
			return fmt.Errorf("%w: invalid palette color %q", ErrInvalidRoom, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate palette color %q", ErrInvalidRoom, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

type Room struct {
	ID        string
	Name      string
	Width     int
	Height    int
	Palette   Palette
	CreatedAt time.Time
}

func NewRoom(id, name string, width, height int, palette Palette) (Room, error) {
	if id == "" || name == "" {
		return Room{}, fmt.Errorf("%w: room id and name are required", ErrInvalidRoom)
	}
	if width <= 0 || height <= 0 || width > MaxRoomSide || height > MaxRoomSide {
		return Room{}, fmt.Errorf("%w: room bounds %dx%d out of range", ErrInvalidRoom, width, height)
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if err := palette.Validate(); err != nil {
		return Room{}, err
	}
	return Room{
		ID:        id,
		Name:      name,
		Width:     width,
		Height:    height,
		Palette:   append(Palette(nil), palette...),
		CreatedAt: time.Now(),
	}, nil
}

func (r Room) Contains(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

func (r Room) String() string {
	return fmt.Sprintf("%s(%s %dx%d)", r.Name, r.ID, r.Width, r.Height)
}
