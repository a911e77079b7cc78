package app

import (
	"github.com/gin-gonic/gin"

	"github.com/campuswell/campuswell-backend/internal/http/middleware"
	"github.com/campuswell/campuswell-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(log))

	router.GET("/health", handlerset.Health.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/chat", handlerset.Chat.Chat)
		api.GET("/suggestions", handlerset.Suggestions.List)
		api.GET("/status", handlerset.Status.Status)
	}

	return router
}
