package models

// Product is a single menu entry.
type Product struct {
	Name  string  `bson:"name" json:"name" validate:"required"`
	Price float64 `bson:"price" json:"price" validate:"gte=0"`
}

// Category groups menu products the way the storefront renders them.
type Category struct {
	Category string    `json:"category"`
	Items    []Product `json:"items"`
}
