package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/light-bringer/market-service/internal/services"
	grpcserver "github.com/light-bringer/market-service/internal/transport/grpc"
	httphandler "github.com/light-bringer/market-service/internal/transport/http"
)

const shutdownTimeout = 15 * time.Second

// serveCmd runs the HTTP API and the gRPC health endpoint
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog HTTP API",
	Long: `Serve the catalog JSON API on HTTP_PORT and gRPC health checking and
reflection on GRPC_PORT. SIGINT or SIGTERM drains both servers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger.WithFields(logrus.Fields{
		"driver":    cfg.StoreDriver,
		"grpc_port": cfg.GRPCPort,
		"http_port": cfg.HTTPPort,
		"page_size": cfg.PageSize,
	}).Info("Starting market catalog service")

	// 1. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 2. Create gRPC server for health checks
	grpcServer := grpcserver.New(logger)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	go func() {
		logger.Infof("gRPC server listening on :%s", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.WithError(err).Error("gRPC server error")
		}
	}()

	// 3. Create HTTP server
	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           httphandler.NewRouter(serviceOpts.ProductHandler, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("HTTP server listening on :%s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("HTTP server error")
		}
	}()

	// 4. Report SERVING once the store answers
	if err := serviceOpts.Ping(ctx); err != nil {
		logger.WithError(err).Warn("store not reachable yet, health stays NOT_SERVING")
	} else {
		grpcServer.SetServing(true)
	}

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown error")
	}

	grpcServer.Stop()
	return nil
}
