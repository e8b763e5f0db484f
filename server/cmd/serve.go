/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ponyo877/pyxl/server/adaptor"
	"github.com/ponyo877/pyxl/server/auth"
	"github.com/ponyo877/pyxl/server/domain"
	"github.com/ponyo877/pyxl/server/handler"
	"github.com/ponyo877/pyxl/server/repository"
	"github.com/ponyo877/pyxl/server/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const (
	grpcPortKey        = "grpc_port"
	httpAddrKey        = "http_addr"
	dbPathKey          = "db_path"
	busyTimeoutKey     = "busy_timeout"
	opTimeoutKey       = "op_timeout"
	maxPendingKey      = "max_pending"
	shutdownTimeoutKey = "shutdown_timeout"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the gRPC and HTTP/WebSocket servers.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("grpc-port", 50051, "gRPC listen port")
	serveCmd.Flags().String("http-addr", ":8080", "HTTP and WebSocket listen address (empty disables)")
	serveCmd.Flags().String("db-path", "./pyxl.db", "SQLite database file")
	serveCmd.Flags().Duration("busy-timeout", 5*time.Second, "SQLite busy timeout")
	serveCmd.Flags().Duration("op-timeout", 10*time.Second, "Upper bound for a single store call (0 disables)")
	serveCmd.Flags().Int("max-pending", 0, "Events queued per subscriber before it is dropped (0 is unbounded)")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown")

	viper.BindPFlag(grpcPortKey, serveCmd.Flags().Lookup("grpc-port"))
	viper.BindPFlag(httpAddrKey, serveCmd.Flags().Lookup("http-addr"))
	viper.BindPFlag(dbPathKey, serveCmd.Flags().Lookup("db-path"))
	viper.BindPFlag(busyTimeoutKey, serveCmd.Flags().Lookup("busy-timeout"))
	viper.BindPFlag(opTimeoutKey, serveCmd.Flags().Lookup("op-timeout"))
	viper.BindPFlag(maxPendingKey, serveCmd.Flags().Lookup("max-pending"))
	viper.BindPFlag(shutdownTimeoutKey, serveCmd.Flags().Lookup("shutdown-timeout"))
}

func serve(ctx context.Context) error {
	log := logrus.WithField("component", "server")

	authenticator, err := auth.NewAuthenticator(viper.GetString(jwtSecretKey), viper.GetDuration(tokenTTLKey))
	if err != nil {
		return fmt.Errorf("jwt_secret must be set: %w", err)
	}

	db, err := repository.Open(viper.GetString(dbPathKey), viper.GetDuration(busyTimeoutKey))
	if err != nil {
		return err
	}
	defer db.Close()

	var busOpts []domain.ChangeBusOption
	if n := viper.GetInt(maxPendingKey); n > 0 {
		busOpts = append(busOpts, domain.WithMaxPending(n))
	}
	bus := domain.NewChangeBus(busOpts...)
	rooms := repository.NewRoomRepository(db)
	store := repository.NewPixelRepository(db, repository.WithOpTimeout(viper.GetDuration(opTimeoutKey)))
	pixels := usecase.NewPixelUsecase(rooms, store, bus, domain.NewSubscriptionManager(bus))
	roomUC := usecase.NewRoomUsecase(rooms, pixels)

	grpcServer, hs := adaptor.NewServer(adaptor.NewAdaptor(pixels, roomUC), authenticator)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", viper.GetInt(grpcPortKey)))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	h := handler.NewHandler(pixels, roomUC, authenticator)
	var httpServer *http.Server
	if addr := viper.GetString(httpAddrKey); addr != "" {
		httpServer = &http.Server{
			Addr:              addr,
			Handler:           h.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", lis.Addr().String()).Info("gRPC server is running")
		return grpcServer.Serve(lis)
	})
	if httpServer != nil {
		g.Go(func() error {
			log.WithField("addr", httpServer.Addr).Info("HTTP server is running")
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")

		// reports NOT_SERVING for every service from here on
		hs.Shutdown()
		// close live streams first so graceful stops do not wait on them
		h.Shutdown()
		pixels.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), viper.GetDuration(shutdownTimeoutKey))
		defer cancel()
		if httpServer != nil {
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("HTTP server shutdown")
			}
		}
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			log.Warn("graceful stop timed out, forcing")
			grpcServer.Stop()
		}
		log.Info("server stopped")
		return nil
	})
	return g.Wait()
}
