package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"message-processor/internal/config"
	"message-processor/internal/middleware"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	EventHandler *EventHandler
	Logger       logrus.FieldLogger
	Server       config.ServerConfig
}

// SetupRoutes configures middleware and all routes of the local invoke server
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(cfg.Logger, cfg.Server.SlowRequestThreshold))
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())

	messageHandler := NewMessageHandler(cfg.EventHandler.HandleEvent)

	router.GET("/health", messageHandler.Health)

	limited := router.Group("")
	limited.Use(middleware.RateLimiter(cfg.Logger, cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	limited.Use(middleware.RequestSizeLimit(cfg.Server.MaxBodyBytes))
	{
		limited.POST("/invoke", messageHandler.Invoke)
		limited.POST("/2015-03-31/functions/function/invocations", messageHandler.Invoke)

		v1 := limited.Group("/api/v1")
		{
			v1.POST("/messages", messageHandler.ProcessMessage)
		}
	}
}
