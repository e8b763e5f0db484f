/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	pb "github.com/ponyo877/pyxl/grpc"
	"github.com/spf13/cobra"
)

// placeCmd represents the place command
var placeCmd = &cobra.Command{
	Use:   "place <room> <x> <y> <color> | place <room> <x,y,color>...",
	Short: "Places one pixel or a batch of pixels.",
	Long: `Places pixels on a room's canvas. A single placement is given as three
arguments. Several "x,y,color" arguments are sent as one batch, which is
applied all-or-nothing.`,
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: RoomCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		placements, err := parsePlacements(args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "place: %v\n", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		r, err := resolveRoom(ctx, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "place: %v\n", err)
			return
		}

		if len(placements) == 1 {
			p := placements[0]
			res, err := canvasClient.PlacePixel(authContext(ctx), &pb.PlacePixelRequest{
				RoomId: r.GetId(),
				X:      p.X,
				Y:      p.Y,
				Color:  p.Color,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "place: %v\n", err)
				return
			}
			px := res.GetPixel()
			fmt.Printf("(%d,%d) %s\n", px.X, px.Y, px.Color)
			return
		}

		res, err := canvasClient.PlacePixels(authContext(ctx), &pb.PlacePixelsRequest{
			RoomId:     r.GetId(),
			Placements: placements,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "place: %v\n", err)
			return
		}
		fmt.Printf("%d pixels placed\n", len(res.GetPixels()))
	},
}

func init() {
	rootCmd.AddCommand(placeCmd)
}
