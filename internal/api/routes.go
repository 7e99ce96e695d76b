package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/media-extractor/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	router *gin.Engine,
	extract *handler.ExtractHandler,
	health *handler.HealthHandler,
	metricsHandler http.Handler,
) {
	router.GET("/", health.Root)

	router.GET("/health", health.HealthCheck)
	router.HEAD("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/metrics", gin.WrapH(metricsHandler))

	router.GET("/extract-metadata/", extract.HandleExtract)
}
