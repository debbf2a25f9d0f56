package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Accepted payment methods. Anything else is rejected before persistence.
const (
	PaymentMethodCOD = "COD"
	PaymentMethodUPI = "UPI"
)

// DefaultOrderStatus is the status assigned to every new order unless the
// client supplies one.
const DefaultOrderStatus = "placed"

var ErrInvalidPaymentMethod = errors.New("invalid payment method, use COD or UPI")

var validate = validator.New()

type OrderItem struct {
	Name     string  `bson:"name" json:"name" validate:"required"`
	Price    float64 `bson:"price" json:"price" validate:"gte=0"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"min=1"`
}

// OrderRequest is the untrusted payload submitted by the client. It carries
// no subtotal or total fields; those are always recomputed server-side.
type OrderRequest struct {
	CustomerName  string      `json:"customerName" validate:"required"`
	ContactNumber string      `json:"contactNumber" validate:"required"`
	PaymentMethod string      `json:"paymentMethod" validate:"required"`
	Items         []OrderItem `json:"items" validate:"required,dive"`
	Discount      *float64    `json:"discount" validate:"omitempty,gte=0"`
	Notes         *string     `json:"notes"`
	Status        string      `json:"status"`
}

// Order is the persisted shape of a customer order (collection "order").
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName  string             `bson:"customer_name" json:"customerName"`
	ContactNumber string             `bson:"contact_number" json:"contactNumber"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Discount      float64            `bson:"discount" json:"discount"`
	Total         float64            `bson:"total" json:"total"`
	Notes         *string            `bson:"notes" json:"notes,omitempty"`
	Status        string             `bson:"status" json:"status"`
}

// ValidateOrder checks payment method membership and the structural field
// constraints. An empty (but present) item list is deliberately accepted;
// the totals clamp at zero in that case.
func ValidateOrder(req *OrderRequest) error {
	if req.PaymentMethod != PaymentMethodCOD && req.PaymentMethod != PaymentMethodUPI {
		return ErrInvalidPaymentMethod
	}
	return validate.Struct(req)
}
