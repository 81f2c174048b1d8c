package routes

import (
	"time"

	"intothestar/handlers"
	"intothestar/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route registration needs.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Admin    *handlers.AdminHandler
	Currency *handlers.CurrencyHandler
}

// RegisterBookingRoutes sets up the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/availability/:date", hb.Booking.GetAvailability)
		api.POST("/initiate", hb.Booking.InitiateBooking)
		api.POST("/verify/:bookingID", hb.Booking.VerifyBooking)
	}
}

// RegisterCurrencyRoutes sets up the conversion endpoint.
func RegisterCurrencyRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/currency")
	{
		api.POST("/convert", hb.Currency.Convert)
	}
}

// RegisterAdminRoutes sets up admin endpoints. Everything except login and
// the public settings read sits behind the admin JWT middleware.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.Login)
		// The booking page needs the base price without authenticating.
		api.GET("/settings", hb.Admin.GetSettings)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("/bookings", hb.Admin.ListBookings)
		protected.GET("/availability", hb.Admin.GetAvailability)
		protected.POST("/availability", hb.Admin.UpdateAvailability)
		protected.POST("/settings", hb.Admin.UpdateSettings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterCurrencyRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
