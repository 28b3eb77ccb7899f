// Package routes cung cấp tất cả routing functions cho Shipping Form Service
//
// Cấu trúc:
// - api.go: API routes (/v1/*)
// - web.go: Web routes (/)
// - routes.go: middleware, 404 và SetupAllRoutes
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shipping-form/app/controllers"
	"github.com/shipping-form/app/responses"
	"go.uber.org/zap"
)

// SetupAllRoutes thiết lập tất cả routes
func SetupAllRoutes(router *gin.Engine, formController *controllers.FormController, geoController *controllers.GeoController, logger *zap.Logger) {
	setupMiddleware(router, logger)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, formController)
	SetupAPIRoutes(router, formController, geoController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:     "ROUTE_NOT_FOUND",
			Message:   c.Request.Method + " " + c.Request.URL.Path,
			Timestamp: time.Now().Format(time.RFC3339),
		})
	})
}

// setupMiddleware thiết lập middleware cho router
func setupMiddleware(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
}

// requestLogger log mỗi request bằng zap
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
