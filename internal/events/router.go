package events

import (
	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.ListUpcoming) // GET /api/v1/events
	}
}

// SetupLegacyEventRoutes serves the listing at the path the storefront
// was built against
func SetupLegacyEventRoutes(engine *gin.Engine, controller Controller) {
	engine.GET("/api_get_events.py", controller.ListUpcoming)
}
