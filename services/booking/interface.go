package booking

import (
	"context"

	"zellige/models"
)

// BookingService accepts intake payloads, upgrades them to canonical form,
// persists them, and lists recent bookings in JSON-safe form.
type BookingService interface {
	CreateBooking(ctx context.Context, intake models.BookingIntake) (string, error)
	ListBookings(ctx context.Context) ([]map[string]any, error)
}
