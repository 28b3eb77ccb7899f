package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shipping-form/app/bootstrap"
	"github.com/shipping-form/app/config"
	"github.com/shipping-form/app/controllers"
	"github.com/shipping-form/routes"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "đường dẫn file cấu hình (mặc định config/app.yaml)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	// Initialize logger
	logger, err := bootstrap.NewLogger(cfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting Shipping Form Service...", zap.String("env", cfg.App.Env))

	// Initialize services
	cascader, err := bootstrap.NewCascader(cfg.Geo, logger)
	if err != nil {
		logger.Fatal("Failed to load administrative dataset", zap.Error(err))
	}

	formService, err := bootstrap.NewFormService(cfg, cascader, logger)
	if err != nil {
		logger.Fatal("Failed to create form service", zap.Error(err))
	}

	// Initialize controllers
	formController := controllers.NewFormController(formService, logger)
	geoController := controllers.NewGeoController(formService)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, formController, geoController, logger)

	srv := &http.Server{
		Addr:              ":" + getPort(cfg),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited", zap.Int("active_sessions", formService.ActiveSessions()))
}

func getPort(cfg *config.Config) string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return cfg.App.Port
}
