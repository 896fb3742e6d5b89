package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/urfit-tech/lodestar-contract-api/internal/config"
	"github.com/urfit-tech/lodestar-contract-api/internal/handlers"
	"github.com/urfit-tech/lodestar-contract-api/internal/middleware"
)

// New builds the gin engine with middleware and routes wired.
func New(cfg *config.Config, contractHandler *handlers.ContractHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS(cfg))
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst).Middleware())

	router.GET("/health", handlers.Health)

	v1 := router.Group("/api/v1")
	{
		contracts := v1.Group("/contracts")
		{
			contracts.POST("", contractHandler.SubmitContract)
			contracts.POST("/preview", contractHandler.PreviewContract)
		}
	}

	return router
}

// configureCORS returns a configured CORS middleware
func configureCORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
	return cors.New(corsConfig)
}
