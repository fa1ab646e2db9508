package routes

import (
	"net/http"

	"ajira_backend/internal/handlers"
	"ajira_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the API under /api/v1 plus the operational endpoints.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	guards handlers.Guards,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := ginRouter.Group("/api/v1")
	appHandlers.RegisterAll(api, guards)

	logger.Info("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
