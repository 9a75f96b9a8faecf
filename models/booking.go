package models

import "time"

// BookingIntake is the loosely-validated shape a client submits. Field
// presence is checked at binding time; format rules live on Booking.
type BookingIntake struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email,omitempty"`
	Service       string `json:"service" binding:"required"`
	PreferredDate string `json:"preferred_date,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Booking is the canonical, persisted record. It is validated against the
// full schema before insert; created_at is always server-assigned and the
// store assigns the document identifier. Bookings are immutable once stored.
type Booking struct {
	Name          string    `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Phone         string    `bson:"phone" json:"phone" validate:"required,min=6,max=20"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Service       string    `bson:"service" json:"service" validate:"required,min=1,max=50"`
	PreferredDate string    `bson:"preferred_date,omitempty" json:"preferred_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PreferredTime string    `bson:"preferred_time,omitempty" json:"preferred_time,omitempty" validate:"omitempty,datetime=15:04"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty" validate:"omitempty,max=500"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// FromIntake upgrades an intake payload to a canonical Booking. The caller
// is responsible for validating the result and stamping CreatedAt.
func FromIntake(in BookingIntake) Booking {
	return Booking{
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		Service:       in.Service,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Notes:         in.Notes,
	}
}
