package domain

import (
	"cmp"
	"slices"
)

// MergeSnapshot replays events that arrived while a snapshot was being read
// over that snapshot. Each coordinate keeps its latest value; the result is
// ordered by row then column.
func MergeSnapshot(snapshot []Pixel, buffered []ChangeEvent) []Pixel {
	grid := make(map[Coord]Pixel, len(snapshot))
	for _, p := range snapshot {
		grid[p.Coord()] = p
	}
	for _, ev := range buffered {
		switch ev.Type {
		case EventPixel, EventBatch:
			for _, p := range ev.Pixels {
				grid[p.Coord()] = p
			}
		}
	}

	merged := make([]Pixel, 0, len(grid))
	for _, p := range grid {
		merged = append(merged, p)
	}
	SortPixels(merged)
	return merged
}

// SortPixels orders pixels by row then column.
func SortPixels(pixels []Pixel) {
	slices.SortFunc(pixels, func(a, b Pixel) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}
