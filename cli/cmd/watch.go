/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	pb "github.com/ponyo877/pyxl/grpc"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [--batches] <room>",
	Short: "Follows placements in a room.",
	Long: `Prints the room's current pixels and then every placement as it happens.
With --batches, subscribes to batch events only and prints one line per batch.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: RoomCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		batches, _ := cmd.Flags().GetBool("batches")

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		r, err := resolveRoom(ctx, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}

		if batches {
			err = followBatches(ctx, r.GetId())
		} else {
			err = followRoom(ctx, r.GetId())
		}
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolP("batches", "b", false, "Follow batched placements only")
}

func followRoom(ctx context.Context, roomID string) error {
	stream, err := canvasClient.Watch(authContext(ctx))
	if err != nil {
		return fmt.Errorf("Watch failed: %w", err)
	}
	if err := stream.Send(&pb.WatchRequest{Type: pb.WatchRequest_JOIN, RoomId: roomID}); err != nil {
		return fmt.Errorf("failed to send join request: %w", err)
	}
	for {
		ev, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return streamErr(err)
		}
		switch ev.GetType() {
		case pb.WatchEvent_SNAPSHOT:
			fmt.Printf("-- snapshot: %d pixels\n", len(ev.GetPixels()))
			printPixels(ev.GetPixels())
			fmt.Println("-- live")
		case pb.WatchEvent_PIXEL, pb.WatchEvent_BATCH:
			printPixels(ev.GetPixels())
		case pb.WatchEvent_CLOSED:
			fmt.Printf("-- closed: %s\n", ev.Message)
			return nil
		case pb.WatchEvent_ERROR:
			fmt.Fprintf(os.Stderr, "-- error: %s\n", ev.Message)
		}
	}
}

func followBatches(ctx context.Context, roomID string) error {
	stream, err := canvasClient.SubscribeBatches(authContext(ctx), &pb.RoomRequest{RoomId: roomID})
	if err != nil {
		return fmt.Errorf("SubscribeBatches failed: %w", err)
	}
	for {
		batch, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return streamErr(err)
		}
		fmt.Printf("-- batch of %d\n", len(batch.GetPixels()))
		printPixels(batch.GetPixels())
	}
}

func printPixels(pixels []*pb.Pixel) {
	for _, p := range pixels {
		fmt.Printf("%d\t%d\t%s\t%s\n", p.X, p.Y, p.Color, p.AuthorId)
	}
}

func streamErr(err error) error {
	if s, ok := status.FromError(err); ok && s.Code() == codes.Unavailable {
		return errors.New("stream closed by server")
	}
	return err
}
