package models

import "time"

// User is exposed through the schema export for database tooling. No
// endpoint persists users in this service.
type User struct {
	ID        string    `bson:"id,omitempty" json:"id,omitempty"`
	Name      string    `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
