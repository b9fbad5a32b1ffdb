package bookings

import (
	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	bookings := router.Group("/bookings")
	{
		bookings.POST("", controller.CreateBooking) // POST /api/v1/bookings
	}
}

// SetupLegacyBookingRoutes keeps the submission paths older storefront
// builds still post to
func SetupLegacyBookingRoutes(engine *gin.Engine, controller Controller) {
	engine.POST("/api_book_ticket.py", controller.CreateBooking)
	engine.POST("/api_book_ticket.php", controller.CreateBooking)
}
