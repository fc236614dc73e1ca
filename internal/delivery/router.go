package delivery

import (
	"fmt"
	"net/http"

	"product_service/internal/metrics"
	"product_service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter mounts the product API together with the index page, the
// health check and, when metricsEnabled, the Prometheus endpoint.
func NewRouter(productHandler *ProductHandler, logger *logrus.Logger, metricsEnabled bool) *gin.Engine {
	router := gin.New()

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("Recovered from panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, MessageResponse{
			Message: fmt.Sprintf("An unexpected error occurred: %v", recovered),
		})
	}))
	router.Use(middleware.RequestID(), middleware.RequestLogger(logger))

	if metricsEnabled {
		router.Use(metrics.Handler())
		router.GET("/metrics", metrics.Exposer())
		logger.Info("Registered metrics route at /metrics")
	}

	router.GET("/", serveIndexPage)
	router.GET("/health", serveHealth)

	productHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")
	return router
}
