package routes

import (
	"net/http"
	"time"

	"coworking/handlers"
	"coworking/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Paths of the widget endpoints. The /functions/v1 paths are the ones the
// embedded widget calls; the /api paths are aliases.
const (
	CheckAvailabilityPath = "/functions/v1/check-availability"
	CreateBookingPath     = "/functions/v1/create-booking"
)

// CORSConfig returns the CORS policy of the API. Preflights are answered
// with 200.
func CORSConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Origin", "Authorization", "Content-Type", "X-Client-Info", "Apikey", middleware.RequestIDHeader},
		ExposeHeaders:             []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// preflight answers OPTIONS requests that carry no Origin header and thus
// pass through the CORS middleware.
func preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// RegisterWidgetRoutes registers the availability and booking endpoints.
func RegisterWidgetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST(CheckAvailabilityPath, hb.CheckAvailability)
	r.OPTIONS(CheckAvailabilityPath, preflight)
	r.POST(CreateBookingPath, hb.CreateBooking)
	r.OPTIONS(CreateBookingPath, preflight)

	api := r.Group("/api")
	{
		api.POST("/availability", hb.CheckAvailability)
		api.OPTIONS("/availability", preflight)
		api.POST("/bookings", hb.CreateBooking)
		api.OPTIONS("/bookings", preflight)
		api.POST("/quote", hb.Quote)
		api.OPTIONS("/quote", preflight)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.JWTSecret))
		adminGroup.GET("/bookings", hb.ListBookings)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	r.Use(cors.New(CORSConfig(origins)))

	RegisterWidgetRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterAdminRoutes(r, hb)
}
