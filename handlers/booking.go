package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zellige/models"
	"zellige/services/booking"
)

// BookingHandler exposes the booking intake and listing endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler returns a BookingHandler backed by the given service.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var intake models.BookingIntake
	if err := c.ShouldBindJSON(&intake); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	id, err := h.Svc.CreateBooking(c.Request.Context(), intake)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Error(), "fields": verr.Fields})
			return
		}
		// Persistence failures get a generic message; connection details
		// stay in the logs.
		h.Logger.Error("CreateBooking: failed to persist booking", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "booking could not be saved, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}

// ListBookings handles GET /api/bookings, the recent-bookings admin view.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	items, err := h.Svc.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListBookings: failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "bookings are unavailable, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}
