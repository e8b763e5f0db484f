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

// pixelsCmd represents the pixels command
var pixelsCmd = &cobra.Command{
	Use:   "pixels <room>",
	Short: "Prints every placed pixel of a room.",
	Long: `Prints the current contents of a room, one pixel per line in row-major
order. With --grid, the canvas is drawn as a character grid where each
colour is shown by its palette index.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: RoomCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		grid, _ := cmd.Flags().GetBool("grid")

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		r, err := resolveRoom(ctx, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "pixels: %v\n", err)
			return
		}
		res, err := canvasClient.GetPixels(authContext(ctx), &pb.RoomRequest{RoomId: r.GetId()})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error calling GetPixels: %v\n", err)
			return
		}

		if grid {
			c := newCanvas(r)
			c.apply(res.GetPixels())
			for _, line := range c.lines() {
				fmt.Println(line)
			}
			return
		}
		for _, p := range res.GetPixels() {
			fmt.Printf("%d\t%d\t%s\t%s\n", p.X, p.Y, p.Color, p.AuthorId)
		}
	},
}

func init() {
	rootCmd.AddCommand(pixelsCmd)
	pixelsCmd.Flags().BoolP("grid", "g", false, "Draw the canvas as a grid of palette indexes")
}
