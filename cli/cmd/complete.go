/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	pb "github.com/ponyo877/pyxl/grpc"
	"github.com/spf13/cobra"
)

// resolveRoom accepts either a room id or a room name.
func resolveRoom(ctx context.Context, arg string) (*pb.Room, error) {
	res, err := canvasClient.ListRooms(authContext(ctx), &pb.ListRoomsRequest{})
	if err != nil {
		return nil, err
	}
	if r := findRoom(res.Rooms, arg); r != nil {
		return r, nil
	}
	return nil, fmt.Errorf("room '%s' not found", arg)
}

func findRoom(rooms []*pb.Room, arg string) *pb.Room {
	for _, r := range rooms {
		if r.GetId() == arg {
			return r
		}
	}
	for _, r := range rooms {
		if r.GetName() == arg {
			return r
		}
	}
	return nil
}

// RoomCompletionFunc provides room name completion for the first argument.
func RoomCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || canvasClient == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res, err := canvasClient.ListRooms(authContext(ctx), &pb.ListRoomsRequest{})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(res.Rooms))
	for _, r := range res.Rooms {
		names = append(names, fmt.Sprintf("%s\t%dx%d", r.GetName(), r.Width, r.Height))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
