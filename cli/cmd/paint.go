/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	pb "github.com/ponyo877/pyxl/grpc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var paintCmd = &cobra.Command{
	Use:   "paint <room>",
	Short: "Opens a room in an interactive terminal canvas",
	Long: `Opens a room over the Watch stream and draws it in the terminal.
Move with the arrow keys or hjkl, pick a colour with Tab / Shift+Tab or 0-9,
and press Space or Enter to place a pixel. Ctrl+C exits.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: RoomCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := resolveRoom(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "paint: %v\n", err)
			return
		}
		if err := runPaintUI(canvasClient, r); err != nil {
			fmt.Fprintf(os.Stderr, "Paint UI error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(paintCmd)
}

// brush is the cursor position and selected palette entry.
type brush struct {
	x, y, color int
}

func (b *brush) move(dx, dy int, c *canvas) {
	b.x = min(max(b.x+dx, 0), c.width-1)
	b.y = min(max(b.y+dy, 0), c.height-1)
}

func (b *brush) cycle(d int, c *canvas) {
	n := len(c.palette)
	b.color = ((b.color+d)%n + n) % n
}

func runPaintUI(client pb.CanvasServiceClient, room *pb.Room) error {
	if len(room.Palette) == 0 {
		return fmt.Errorf("room '%s' has no palette", room.GetName())
	}
	app := tview.NewApplication()
	cv := newCanvas(room)
	b := &brush{}

	board := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	board.SetBorder(true).SetTitle(fmt.Sprintf(" %s %dx%d ", room.GetName(), room.Width, room.Height))

	status := tview.NewTextView().SetDynamicColors(true)
	logView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		ScrollToEnd()

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(board, 0, 1, true).
		AddItem(status, 1, 0, false).
		AddItem(logView, 3, 0, false)

	app.SetRoot(flex, true).SetFocus(board)

	// must run on the UI goroutine
	redraw := func() {
		board.SetText(cv.markup(b.x, b.y))
		status.SetText(paletteBar(cv.palette, b))
	}
	logf := func(format string, a ...any) {
		fmt.Fprintf(logView, format+"\n", a...)
		logView.ScrollToEnd()
	}
	redraw()

	ctx, cancel := context.WithCancel(authContext(context.Background()))
	defer cancel()

	stream, err := client.Watch(ctx)
	if err != nil {
		return fmt.Errorf("Watch failed: %w", err)
	}
	if err := stream.Send(&pb.WatchRequest{Type: pb.WatchRequest_JOIN, RoomId: room.GetId()}); err != nil {
		return fmt.Errorf("failed to send join request: %w", err)
	}

	go func() {
		for {
			ev, err := stream.Recv()
			if err == io.EOF {
				app.QueueUpdateDraw(func() { logf("[red]Stream closed by server.") })
				return
			}
			if err != nil {
				if ctx.Err() == nil {
					app.QueueUpdateDraw(func() { logf("[red]Error receiving event: %v", streamErr(err)) })
				}
				return
			}
			app.QueueUpdateDraw(func() {
				switch ev.GetType() {
				case pb.WatchEvent_ERROR:
					logf("[red]%s", ev.Message)
				case pb.WatchEvent_CLOSED:
					logf("[yellow]Room closed: %s", ev.Message)
				case pb.WatchEvent_SNAPSHOT:
					logf("[green]Joined %s, %d pixels placed. (Ctrl+C to exit)", room.GetName(), len(ev.GetPixels()))
				}
				cv.applyEvent(ev)
				redraw()
			})
		}
	}()

	place := func() {
		req := &pb.WatchRequest{
			Type:   pb.WatchRequest_PLACE,
			RoomId: room.GetId(),
			Placement: &pb.Placement{
				X:     int64(b.x),
				Y:     int64(b.y),
				Color: cv.palette[b.color],
			},
		}
		if err := stream.Send(req); err != nil {
			logf("[red]Failed to place pixel: %v", err)
		}
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			cancel()
			app.Stop()
			return nil
		case tcell.KeyUp:
			b.move(0, -1, cv)
		case tcell.KeyDown:
			b.move(0, 1, cv)
		case tcell.KeyLeft:
			b.move(-1, 0, cv)
		case tcell.KeyRight:
			b.move(1, 0, cv)
		case tcell.KeyTab:
			b.cycle(1, cv)
		case tcell.KeyBacktab:
			b.cycle(-1, cv)
		case tcell.KeyEnter:
			place()
		case tcell.KeyRune:
			switch r := event.Rune(); {
			case r == 'k':
				b.move(0, -1, cv)
			case r == 'j':
				b.move(0, 1, cv)
			case r == 'h':
				b.move(-1, 0, cv)
			case r == 'l':
				b.move(1, 0, cv)
			case r == ' ':
				place()
			case r >= '0' && r <= '9' && int(r-'0') < len(cv.palette):
				b.color = int(r - '0')
			default:
				return event
			}
		default:
			return event
		}
		redraw()
		return nil
	})

	if err := app.Run(); err != nil {
		cancel()
		return err
	}
	_ = stream.CloseSend()
	return nil
}

func paletteBar(palette []string, b *brush) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%d,%d) ", b.x, b.y)
	for i, col := range palette {
		if i == b.color {
			fmt.Fprintf(&sb, "[%s::r]%2d[-:-:-]", col, i)
			continue
		}
		fmt.Fprintf(&sb, "[%s]%2d[-]", col, i)
	}
	return sb.String()
}
