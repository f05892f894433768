package routes

import (
	"net/http"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/handlers"
	"github.com/darshanpawar101/mini-calendly-clone/middleware"
	"github.com/darshanpawar101/mini-calendly-clone/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the authenticated schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.GetScheduleHandler)
		api.PUT("", hb.SaveScheduleHandler)
		api.DELETE("", hb.DeleteScheduleHandler)
	}
}

// RegisterEventRoutes registers the authenticated event-type endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateEventHandler)
		api.GET("", hb.ListEventsHandler)
		api.GET("/:id", hb.GetEventHandler)
		api.PUT("/:id", hb.UpdateEventHandler)
		api.DELETE("/:id", hb.DeleteEventHandler)
	}
}

// RegisterMeetingRoutes registers the authenticated meeting endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meetings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListMeetingsHandler)
	}
}

// RegisterBookingRoutes registers the public guest-facing booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/book")
	{
		api.GET("/users/:userId/events", hb.ListPublicEventsHandler)
		api.GET("/events/:eventId/slots", hb.GetSlotsHandler)
		api.POST("/events/:eventId", hb.BookMeetingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires up CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
