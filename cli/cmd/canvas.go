package cmd

import (
	"fmt"
	"strconv"
	"strings"

	pb "github.com/ponyo877/pyxl/grpc"
)

const (
	emptyCell   = '.'
	unknownCell = '?'
	// background of never-placed cells in the paint view
	backgroundColor = "#1c1c1c"
)

// canvas is the client side copy of a room's pixels.
type canvas struct {
	width, height int
	palette       []string
	index         map[string]int
	cells         []string
}

func newCanvas(r *pb.Room) *canvas {
	c := &canvas{
		width:   int(r.Width),
		height:  int(r.Height),
		palette: r.Palette,
		index:   make(map[string]int, len(r.Palette)),
	}
	for i, col := range r.Palette {
		c.index[col] = i
	}
	c.cells = make([]string, c.width*c.height)
	return c
}

func (c *canvas) set(x, y int64, color string) bool {
	if x < 0 || y < 0 || x >= int64(c.width) || y >= int64(c.height) {
		return false
	}
	c.cells[int(y)*c.width+int(x)] = color
	return true
}

func (c *canvas) get(x, y int) string {
	return c.cells[y*c.width+x]
}

func (c *canvas) apply(pixels []*pb.Pixel) {
	for _, p := range pixels {
		c.set(p.X, p.Y, p.Color)
	}
}

func (c *canvas) reset() {
	clear(c.cells)
}

// applyEvent folds a watch event into the canvas. A snapshot replaces the
// whole canvas.
func (c *canvas) applyEvent(ev *pb.WatchEvent) {
	switch ev.GetType() {
	case pb.WatchEvent_SNAPSHOT:
		c.reset()
		c.apply(ev.GetPixels())
	case pb.WatchEvent_PIXEL, pb.WatchEvent_BATCH:
		c.apply(ev.GetPixels())
	}
}

// lines draws one row per line, each cell as its base-36 palette index.
func (c *canvas) lines() []string {
	out := make([]string, 0, c.height)
	var sb strings.Builder
	for y := range c.height {
		sb.Reset()
		for x := range c.width {
			col := c.get(x, y)
			if col == "" {
				sb.WriteByte(emptyCell)
				continue
			}
			i, ok := c.index[col]
			if !ok || i >= 36 {
				sb.WriteByte(unknownCell)
				continue
			}
			sb.WriteString(strconv.FormatInt(int64(i), 36))
		}
		out = append(out, sb.String())
	}
	return out
}

// markup renders the canvas with tview colour tags, two columns per cell.
// The cell under the cursor is drawn in reverse.
func (c *canvas) markup(cx, cy int) string {
	var sb strings.Builder
	for y := range c.height {
		for x := range c.width {
			col := c.get(x, y)
			if col == "" {
				col = backgroundColor
			}
			if x == cx && y == cy {
				fmt.Fprintf(&sb, "[%s::r]▒▒[-:-:-]", col)
				continue
			}
			fmt.Fprintf(&sb, "[%s]██", col)
		}
		sb.WriteString("[-]\n")
	}
	return sb.String()
}

// parsePlacements accepts either "x y color" or any number of "x,y,color".
func parsePlacements(args []string) ([]*pb.Placement, error) {
	if len(args) == 3 && !strings.Contains(args[0], ",") {
		p, err := parsePlacement(args[0], args[1], args[2])
		if err != nil {
			return nil, err
		}
		return []*pb.Placement{p}, nil
	}
	out := make([]*pb.Placement, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid placement '%s', want x,y,color", arg)
		}
		p, err := parsePlacement(parts[0], parts[1], parts[2])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parsePlacement(xs, ys, color string) (*pb.Placement, error) {
	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid x '%s'", xs)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid y '%s'", ys)
	}
	color = normalizeColor(color)
	if color == "" {
		return nil, fmt.Errorf("missing color")
	}
	return &pb.Placement{X: x, Y: y, Color: color}, nil
}
