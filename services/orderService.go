package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bitsbites/backend/models"
	"github.com/bitsbites/backend/store"
	"go.mongodb.org/mongo-driver/bson"
)

// OrderCollection is the document store collection order records live in.
const OrderCollection = "order"

// DefaultListLimit caps GET /orders when no limit is supplied.
const DefaultListLimit = 50

// OrderService is the sole writer of order records.
type OrderService struct {
	store store.DocumentStore
	log   *slog.Logger
}

func NewOrderService(st store.DocumentStore, log *slog.Logger) *OrderService {
	return &OrderService{store: st, log: log}
}

// SubmitOrder validates the payload, recomputes subtotal, discount and total
// from the item list and persists the order with a single insert. Any totals
// present in the raw input are never trusted.
func (s *OrderService) SubmitOrder(ctx context.Context, req models.OrderRequest) (string, float64, error) {
	if err := models.ValidateOrder(&req); err != nil {
		return "", 0, err
	}

	var subtotal float64
	for _, item := range req.Items {
		subtotal += item.Price * float64(item.Quantity)
	}

	var discount float64
	if req.Discount != nil {
		discount = *req.Discount
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	status := req.Status
	if status == "" {
		status = models.DefaultOrderStatus
	}

	order := models.Order{
		CustomerName:  req.CustomerName,
		ContactNumber: req.ContactNumber,
		PaymentMethod: req.PaymentMethod,
		Items:         req.Items,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
		Notes:         req.Notes,
		Status:        status,
	}

	id, err := s.store.CreateDocument(ctx, OrderCollection, order)
	if err != nil {
		return "", 0, fmt.Errorf("saving order: %w", err)
	}

	s.log.Info("new order saved", "order_id", id, "payment_method", req.PaymentMethod, "total", total)
	return id, total, nil
}

// ListOrders returns up to limit persisted orders with their store
// identifiers rendered as strings. A non-positive limit falls back to the
// default.
func (s *OrderService) ListOrders(ctx context.Context, limit int64) ([]bson.M, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	docs, err := s.store.ListDocuments(ctx, OrderCollection, bson.M{}, limit)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return docs, nil
}
