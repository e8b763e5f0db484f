package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Pixel is the current state of one coordinate in a room.
type Pixel struct {
	X        int
	Y        int
	Color    Color
	AuthorID string
}

func NewPixel(x, y int, color Color, authorID string) Pixel {
	return Pixel{X: x, Y: y, Color: color, AuthorID: authorID}
}

func (p Pixel) Coord() Coord {
	return Coord{X: p.X, Y: p.Y}
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d) %s by %s", p.X, p.Y, p.Color, p.AuthorID)
}

type Coord struct {
	X int
	Y int
}

// Placement is a requested write before it is validated and committed.
type Placement struct {
	X     int
	Y     int
	Color Color
}

// EncodeKey renders the on-disk record key "{x}:{y}".
func EncodeKey(x, y int) string {
	return strconv.Itoa(x) + ":" + strconv.Itoa(y)
}

func DecodeKey(key string) (int, int, error) {
	xs, ys, ok := strings.Cut(key, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed pixel key %q", key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed pixel key %q: %w", key, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed pixel key %q: %w", key, err)
	}
	return x, y, nil
}

// EncodeValue renders the on-disk record value "{color}:{authorId}".
func EncodeValue(color Color, authorID string) string {
	return string(color) + ":" + authorID
}

// DecodeValue splits on the first colon; colors never contain one, author ids may.
func DecodeValue(value string) (Color, string, error) {
	color, author, ok := strings.Cut(value, ":")
	if !ok {
		return "", "", fmt.Errorf("malformed pixel value %q", value)
	}
	return Color(color), author, nil
}

func DecodeRecord(key, value string) (Pixel, error) {
	x, y, err := DecodeKey(key)
	if err != nil {
		return Pixel{}, err
	}
	color, author, err := DecodeValue(value)
	if err != nil {
		return Pixel{}, err
	}
	return NewPixel(x, y, color, author), nil
}
