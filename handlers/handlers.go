package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers wired up in main, so route
// registration only depends on this one type.
type HandlerBundle struct {
	// Static catalog endpoints.
	RootHandler         gin.HandlerFunc
	HelloHandler        gin.HandlerFunc
	ListServicesHandler gin.HandlerFunc
	ShopInfoHandler     gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc

	// Operational endpoints.
	DiagnosticsHandler gin.HandlerFunc
	SchemaHandler      gin.HandlerFunc
}
