package models

// Product is exposed through the schema export for database tooling. No
// endpoint persists products in this service.
type Product struct {
	ID          string  `bson:"id,omitempty" json:"id,omitempty"`
	Name        string  `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Price       float64 `bson:"price" json:"price" validate:"gte=0"`
	Description string  `bson:"description,omitempty" json:"description,omitempty" validate:"omitempty,max=500"`
	InStock     bool    `bson:"in_stock" json:"in_stock"`
}
