package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"product_service/config"
	"product_service/internal/delivery"
	grpcdelivery "product_service/internal/delivery/grpc"
	"product_service/internal/metrics"
	"product_service/internal/repository"
	"product_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	//  Configuration and Logging Setup
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logger.SetLevel(cfg.Level())
	gin.SetMode(cfg.GinMode)

	logger.Info("Starting Product Service...")

	// --- Dependency Injection ---
	productRepo := repository.NewMemoryProductRepository(logger)
	productUseCase := usecase.NewProductUseCase(productRepo, metrics.OperationRecorder{}, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)

	router := delivery.NewRouter(productHandler, logger, cfg.MetricsEnabled)
	srv := &http.Server{Addr: cfg.HTTPPort, Handler: router}

	go func() {
		logger.Infof("Starting HTTP server on %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	grpcServer, healthServer := grpcdelivery.NewServer(productUseCase, logger)
	if cfg.GrpcEnabled {
		lis, err := net.Listen("tcp", cfg.GrpcPort)
		if err != nil {
			logger.Fatalf("Failed to listen on %s: %v", cfg.GrpcPort, err)
		}
		go func() {
			logger.Infof("Starting gRPC server on %s", cfg.GrpcPort)
			if err := grpcServer.Serve(lis); err != nil {
				logger.Fatalf("Failed to serve gRPC: %v", err)
			}
		}()
	}

	//  Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.Infof("Received %s, shutting down", sig)

	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP server shutdown: %v", err)
	}
	if cfg.GrpcEnabled {
		grpcServer.GracefulStop()
	}
	logger.Info("Product Service stopped")
}
