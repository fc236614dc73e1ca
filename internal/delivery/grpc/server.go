package grpc

import (
	"product_service/internal/metrics"
	"product_service/internal/usecase"

	"github.com/sirupsen/logrus"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NewServer registers the product service and the standard health service.
// Both report SERVING until the returned health server is shut down.
func NewServer(puc usecase.ProductUseCase, logger *logrus.Logger) (*gogrpc.Server, *health.Server) {
	server := gogrpc.NewServer(gogrpc.ChainUnaryInterceptor(metrics.UnaryServerInterceptor()))

	RegisterProductServiceServer(server, NewProductHandler(puc, logger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ProductServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Info("gRPC services registered.")
	return server, healthServer
}
