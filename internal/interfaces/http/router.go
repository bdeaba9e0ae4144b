// Package http assembles the gin engine: middleware, health probe and the
// dashboard API routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	directoryhandlers "intervia/internal/interfaces/http/handlers/directory"
	interventionhandlers "intervia/internal/interfaces/http/handlers/intervention"
	"intervia/internal/interfaces/http/middleware"
	"intervia/internal/interfaces/http/routes"
	"intervia/internal/shared/logger"
	"intervia/internal/shared/version"
)

type RouterConfig struct {
	Mode                string
	AllowedOrigins      []string
	InterventionHandler *interventionhandlers.Handler
	DirectoryHandler    *directoryhandlers.Handler
}

func NewRouter(config *RouterConfig) *gin.Engine {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CustomLogger(logger.NewLogger().Named("http")))
	engine.Use(middleware.CORS(config.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": version.Version,
		})
	})

	routes.SetupAPIRoutes(engine, &routes.APIRouteConfig{
		InterventionHandler: config.InterventionHandler,
		DirectoryHandler:    config.DirectoryHandler,
	})

	return engine
}
