// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	_ "itickets/docs"
	"itickets/internal/bookings"
	"itickets/internal/events"
	"itickets/internal/notifications"
	"itickets/internal/shared/config"
	"itickets/internal/shared/database"
	"itickets/internal/shared/utils/response"
	"itickets/pkg/cache"
	"itickets/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher notifications.Publisher

	eventService events.Service // shared with bookings for lookup and invalidation
}

// NewRouter creates a new router instance. A nil publisher disables
// booking confirmation messages.
func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher) *Router {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(response.MethodNotAllowed)
	engine.NoRoute(response.NotFound)

	r.setupHealthRoutes(engine)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// events first: bookings depend on the event service
		eventController := r.setupEventRoutes(api)
		bookingController := r.setupBookingRoutes(api)

		events.SetupLegacyEventRoutes(engine, eventController)
		bookings.SetupLegacyBookingRoutes(engine, bookingController)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			logger.GetDefault().ErrorWithContext(c.Request.Context(), "Health check failed", err, nil)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     "storage unavailable",
				"timestamp": time.Now(),
				"service":   "itickets-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "itickets-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"redis_cache": r.db.GetRedis() != nil,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupEventRoutes(rg *gin.RouterGroup) events.Controller {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL(), events.DefaultCapacities{
		Standard: r.config.Booking.StandardDefaultCapacity,
		VIP:      r.config.Booking.VIPDefaultCapacity,
	})

	var cacheService cache.Service
	if rdb := r.db.GetRedis(); rdb != nil {
		cacheService = cache.NewService(rdb)
	}

	r.eventService = events.NewService(eventRepo, cacheService, r.config.Catalog.CacheTTL)
	eventController := events.NewController(r.eventService)

	events.SetupEventRoutes(rg, eventController)
	return eventController
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) bookings.Controller {
	store := bookings.NewStore(r.db.GetPostgreSQL())
	refs := bookings.NewReferenceGenerator(r.config.Booking.ReferencePrefix, r.config.Booking.ReferenceLength)

	bookingService := bookings.NewService(r.eventService, store, refs, bookings.Settings{
		ReferenceAttempts:       r.config.Booking.ReferenceAttempts,
		StandardDefaultCapacity: r.config.Booking.StandardDefaultCapacity,
		VIPDefaultCapacity:      r.config.Booking.VIPDefaultCapacity,
	})
	bookingService.SetPublisher(r.publisher)
	bookingService.SetListingInvalidator(r.eventService)

	bookingController := bookings.NewController(bookingService)
	bookings.SetupBookingRoutes(rg, bookingController)
	return bookingController
}
