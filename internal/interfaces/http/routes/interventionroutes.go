package routes

import (
	"github.com/gin-gonic/gin"

	directoryhandlers "intervia/internal/interfaces/http/handlers/directory"
	interventionhandlers "intervia/internal/interfaces/http/handlers/intervention"
)

type APIRouteConfig struct {
	InterventionHandler *interventionhandlers.Handler
	DirectoryHandler    *directoryhandlers.Handler
}

// SetupAPIRoutes registers the legacy dashboard endpoints. The paths are
// part of the frontend contract and must stay as they are.
func SetupAPIRoutes(engine *gin.Engine, config *APIRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/stats", config.InterventionHandler.GetStats)
		api.GET("/urgent-all", config.InterventionHandler.ListUrgent)
		api.GET("/all-recent", config.InterventionHandler.ListRecent)

		api.POST("/assign-technician", config.InterventionHandler.AssignTechnician)
		api.POST("/assign-date", config.InterventionHandler.AssignDate)
		api.POST("/create-intervention", config.InterventionHandler.Create)

		api.GET("/public/:token", config.InterventionHandler.GetByToken)

		api.GET("/interventions/:number", config.InterventionHandler.GetByNumber)
		api.DELETE("/interventions/:id", config.InterventionHandler.Delete)

		api.GET("/clients", config.DirectoryHandler.ListClients)
		api.GET("/technicians", config.DirectoryHandler.ListTechnicians)
		api.GET("/chantiers", config.DirectoryHandler.ListChantiers)
		api.GET("/statuses", config.DirectoryHandler.ListStatuses)
		api.GET("/types", config.DirectoryHandler.ListTypes)
	}
}
