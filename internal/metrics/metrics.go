package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by path, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	GRPCRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "grpc_requests_total", Help: "gRPC unary calls by method and status code."},
		[]string{"method", "code"},
	)
	ProductOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "products_operations_total", Help: "Product store operations by result."},
		[]string{"operation", "result"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, GRPCRequests, ProductOperations)
}

// Handler records request count and latency for every route.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Exposer serves the default registry in the Prometheus text format.
func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }

func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		GRPCRequests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}

// OperationRecorder feeds products_operations_total.
type OperationRecorder struct{}

func (OperationRecorder) RecordOperation(operation, result string) {
	ProductOperations.WithLabelValues(operation, result).Inc()
}
