/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	pb "github.com/ponyo877/pyxl/grpc"
	"github.com/spf13/cobra"
)

// roomCmd represents the room command
var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Creates, lists and deletes rooms.",
}

var roomCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Creates a new room.",
	Long: `Creates a new room with the given name. Width and height default to the
server defaults when omitted; an empty palette selects the default 16 colours.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		width, _ := cmd.Flags().GetInt64("width")
		height, _ := cmd.Flags().GetInt64("height")
		palette, _ := cmd.Flags().GetStringSlice("palette")
		for i := range palette {
			palette[i] = normalizeColor(palette[i])
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		res, err := canvasClient.CreateRoom(authContext(ctx), &pb.CreateRoomRequest{
			Name:    args[0],
			Width:   width,
			Height:  height,
			Palette: palette,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating room: %v\n", err)
			return
		}
		r := res.GetRoom()
		fmt.Printf("Room '%s' created (id %s, %dx%d, %d colours)\n", r.GetName(), r.GetId(), r.Width, r.Height, len(r.Palette))
	},
}

var roomLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lists rooms.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		res, err := canvasClient.ListRooms(authContext(ctx), &pb.ListRoomsRequest{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error calling ListRooms: %v\n", err)
			return
		}
		if len(res.Rooms) == 0 {
			fmt.Println("No rooms.")
			return
		}
		for _, r := range res.Rooms {
			formattedTime := "           "
			if r.Created != nil {
				t := r.Created.AsTime().Local()
				formattedTime = fmt.Sprintf("%s %2d %s", t.Format("1"), t.Day(), t.Format("15:04"))
			}
			size := fmt.Sprintf("%dx%d", r.Width, r.Height)
			fmt.Printf("%-26s %-9s %s %s\n", r.GetId(), size, formattedTime, r.GetName())
		}
	},
}

var roomRmCmd = &cobra.Command{
	Use:               "rm <room>...",
	Short:             "Deletes rooms and all their pixels.",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: RoomCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		for _, arg := range args {
			r, err := resolveRoom(ctx, arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "rm: %v\n", err)
				continue
			}
			if _, err := canvasClient.DeleteRoom(authContext(ctx), &pb.RoomRequest{RoomId: r.GetId()}); err != nil {
				fmt.Fprintf(os.Stderr, "rm: cannot remove '%s': %v\n", arg, err)
				continue
			}
			fmt.Printf("Room '%s' removed\n", r.GetName())
		}
	},
}

func init() {
	rootCmd.AddCommand(roomCmd)
	roomCmd.AddCommand(roomCreateCmd, roomLsCmd, roomRmCmd)

	roomCreateCmd.Flags().Int64("width", 0, "Canvas width (0 uses the server default)")
	roomCreateCmd.Flags().Int64("height", 0, "Canvas height (0 uses the server default)")
	roomCreateCmd.Flags().StringSlice("palette", nil, "Comma separated #RRGGBB colours")
}

func normalizeColor(c string) string {
	c = strings.TrimSpace(c)
	if c != "" && !strings.HasPrefix(c, "#") {
		c = "#" + c
	}
	return c
}
