// Package grpc holds the CanvasService protocol generated from
// proto/pyxl/v1/canvas.proto.
package grpc

//go:generate protoc -I ../proto --go_out=.. --go_opt=module=github.com/ponyo877/pyxl --go-grpc_out=.. --go-grpc_opt=module=github.com/ponyo877/pyxl pyxl/v1/canvas.proto
