package routes

import (
	"net/http"
	"time"

	"voyago/handlers"
	"voyago/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)

		bookingGroup.POST("/session/:sessionID/search", hb.Booking.Search)
		bookingGroup.POST("/session/:sessionID/modify-search", hb.Booking.ModifySearch)
		bookingGroup.POST("/session/:sessionID/select", hb.Booking.SelectItem)

		bookingGroup.POST("/session/:sessionID/attendees", hb.Booking.AddAttendee)
		bookingGroup.PUT("/session/:sessionID/attendees/:attendeeID", hb.Booking.UpdateAttendee)
		bookingGroup.DELETE("/session/:sessionID/attendees/:attendeeID", hb.Booking.RemoveAttendee)
		bookingGroup.POST("/session/:sessionID/submit", hb.Booking.SubmitAttendees)

		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.Confirm)
		bookingGroup.POST("/session/:sessionID/back", hb.Booking.Back)
		bookingGroup.POST("/session/:sessionID/reset", hb.Booking.Reset)
		bookingGroup.GET("/session/:sessionID/issuance", hb.Booking.Issuance)
	}
}

// RegisterIntentRoutes registers the free-text intent endpoint.
func RegisterIntentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/intent")
	{
		api.POST("", hb.Intent.Resolve)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Voyago"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterIntentRoutes(r, hb)
}
