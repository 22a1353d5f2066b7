package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sceneforge/sceneplan-api/internal/api/handlers"
	"github.com/sceneforge/sceneplan-api/internal/api/middleware"
	"github.com/sceneforge/sceneplan-api/internal/config"
	"github.com/sceneforge/sceneplan-api/internal/metrics"
)

func SetupRouter(cfg *config.Config, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(middleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(middleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(middleware.RequestTracking(cw))

	// CORS middleware
	router.Use(middleware.CORS(cfg.AllowedOrigins()))

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// API routes v1. Auth is either gateway-trusted headers or none; provider
	// credentials ride on each request either way.
	v1 := router.Group("/api/v1")
	if cfg.IsGatewayMode() {
		v1.Use(middleware.GatewayAuth())
	} else {
		v1.Use(middleware.NoAuth())
	}
	{
		// Scene planning: duration expression + concept in, scene map out
		planHandler := handlers.NewScenePlanHandler(cfg, cw)
		v1.POST("/scene-plans", planHandler.Create)

		// Duration dry-run: parse an expression without calling a provider
		durationHandler := handlers.NewDurationHandler()
		v1.POST("/duration/preview", durationHandler.Preview)
	}

	return router
}
