// Soldy development backend: serves the documented marketplace API
// over HTTP off a seeded in-memory dataset so clients have a real
// endpoint honoring the wire contract.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soldy/api"
	"soldy/config"
	"soldy/handlers"
	"soldy/middleware"
	"soldy/routes"
	"soldy/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := newRouter()

	// The seeded mock dataset backs the catalog endpoints. Latency is
	// zero here; the network is real.
	mockClient := api.NewMock(utils.RealClock{}, config.AppConfig.MockDataSeed, 0)

	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(mockClient, logger),
		Cart:    handlers.NewCartHandler(mockClient, logger),
		Auth:    handlers.NewAuthHandler(logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	return router
}
