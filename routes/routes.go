package routes

import (
	"time"

	"zellige/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the static shop/service endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/api/hello", hb.HelloHandler)
	r.GET("/api/services", hb.ListServicesHandler)
	r.GET("/api/shop", hb.ShopInfoHandler)
}

// RegisterBookingRoutes sets up the booking intake and listing endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
	}
}

// RegisterOperationalRoutes registers diagnostics and schema export.
func RegisterOperationalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/test", hb.DiagnosticsHandler)
	r.GET("/schema", hb.SchemaHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here. The open posture is
	// deliberate: this is a low-stakes public demo API.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOperationalRoutes(r, hb)
}
