package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/bitsbites/backend/models"
	"github.com/bitsbites/backend/store"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newTestService(t *testing.T) (*OrderService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOrderService(st, log), st
}

func request(items []models.OrderItem, discount *float64) models.OrderRequest {
	return models.OrderRequest{
		CustomerName:  "Asha",
		ContactNumber: "9876543210",
		PaymentMethod: models.PaymentMethodCOD,
		Items:         items,
		Discount:      discount,
	}
}

func f(v float64) *float64 { return &v }

func TestSubmitOrderComputesTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.OrderItem
		discount     *float64
		wantSubtotal float64
		wantTotal    float64
	}{
		{
			name: "tea and veg puff with discount",
			items: []models.OrderItem{
				{Name: "Tea", Price: 20, Quantity: 2},
				{Name: "Veg Puff", Price: 35, Quantity: 1},
			},
			discount:     f(5),
			wantSubtotal: 75,
			wantTotal:    70,
		},
		{
			name: "discount exceeding subtotal clamps total at zero",
			items: []models.OrderItem{
				{Name: "Chicken 65", Price: 130, Quantity: 1},
			},
			discount:     f(200),
			wantSubtotal: 130,
			wantTotal:    0,
		},
		{
			name: "no discount",
			items: []models.OrderItem{
				{Name: "Masala Dosa", Price: 50, Quantity: 3},
			},
			wantSubtotal: 150,
			wantTotal:    150,
		},
		{
			name: "quantity multiplies unit price",
			items: []models.OrderItem{
				{Name: "Filter Coffee", Price: 25, Quantity: 4},
				{Name: "Garlic Bread", Price: 70, Quantity: 2},
			},
			discount:     f(40),
			wantSubtotal: 240,
			wantTotal:    200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newTestService(t)

			id, total, err := svc.SubmitOrder(context.Background(), request(tt.items, tt.discount))
			require.NoError(t, err)
			require.NotEmpty(t, id)
			require.Equal(t, tt.wantTotal, total)

			docs, err := st.ListDocuments(context.Background(), OrderCollection, bson.M{}, 10)
			require.NoError(t, err)
			require.Len(t, docs, 1)

			doc := docs[0]
			require.Equal(t, tt.wantSubtotal, doc["subtotal"])
			require.Equal(t, tt.wantTotal, doc["total"])
		})
	}
}

func TestSubmitOrderRejectsInvalidPaymentMethod(t *testing.T) {
	svc, st := newTestService(t)

	req := request([]models.OrderItem{{Name: "Tea", Price: 20, Quantity: 1}}, nil)
	req.PaymentMethod = "CARD"

	_, _, err := svc.SubmitOrder(context.Background(), req)
	require.ErrorIs(t, err, models.ErrInvalidPaymentMethod)

	// Nothing may be persisted when validation fails.
	docs, err := st.ListDocuments(context.Background(), OrderCollection, bson.M{}, 10)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestSubmitOrderRejectsStructuralErrors(t *testing.T) {
	svc, st := newTestService(t)

	req := request([]models.OrderItem{{Name: "Tea", Price: 20, Quantity: 0}}, nil)

	_, _, err := svc.SubmitOrder(context.Background(), req)
	require.Error(t, err)
	require.NotErrorIs(t, err, models.ErrInvalidPaymentMethod)

	docs, err := st.ListDocuments(context.Background(), OrderCollection, bson.M{}, 10)
	require.NoError(t, err)
	require.Empty(t, docs)
}

// An order with zero items and a nonzero discount is structurally accepted
// and its total clamps to zero. This mirrors the original behavior; it is
// flagged here rather than silently tightened.
func TestSubmitOrderEmptyItemsPermissiveness(t *testing.T) {
	svc, _ := newTestService(t)

	_, total, err := svc.SubmitOrder(context.Background(), request([]models.OrderItem{}, f(50)))
	require.NoError(t, err)
	require.Equal(t, 0.0, total)
}

func TestSubmitOrderStatusDefaults(t *testing.T) {
	svc, st := newTestService(t)

	req := request([]models.OrderItem{{Name: "Tea", Price: 20, Quantity: 1}}, nil)
	_, _, err := svc.SubmitOrder(context.Background(), req)
	require.NoError(t, err)

	req.Status = "confirmed"
	_, _, err = svc.SubmitOrder(context.Background(), req)
	require.NoError(t, err)

	docs, err := st.ListDocuments(context.Background(), OrderCollection, bson.M{}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "placed", docs[0]["status"])
	require.Equal(t, "confirmed", docs[1]["status"])
}

func TestSubmitOrderStorageFailure(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOrderService(store.NewMongoStore(nil), log)

	_, _, err := svc.SubmitOrder(context.Background(), request([]models.OrderItem{{Name: "Tea", Price: 20, Quantity: 1}}, nil))
	require.True(t, errors.Is(err, store.ErrStorageUnavailable), "got %v", err)
}

func TestListOrdersHonorsLimit(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 5; i++ {
		_, _, err := svc.SubmitOrder(context.Background(), request([]models.OrderItem{{Name: "Tea", Price: 20, Quantity: 1}}, nil))
		require.NoError(t, err)
	}

	docs, err := svc.ListOrders(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	for _, doc := range docs {
		_, ok := doc["_id"].(string)
		require.True(t, ok, "_id should be a string, got %T", doc["_id"])
	}
}

func TestSubmitOrderRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	notes := "less spicy"
	req := models.OrderRequest{
		CustomerName:  "Ravi",
		ContactNumber: "9000000000",
		PaymentMethod: models.PaymentMethodUPI,
		Items: []models.OrderItem{
			{Name: "Tea", Price: 20, Quantity: 2},
			{Name: "Veg Puff", Price: 35, Quantity: 1},
		},
		Discount: f(5),
		Notes:    &notes,
	}

	id, total, err := svc.SubmitOrder(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 70.0, total)

	docs, err := svc.ListOrders(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	require.Equal(t, id, doc["_id"])
	require.Equal(t, "Ravi", doc["customer_name"])
	require.Equal(t, "9000000000", doc["contact_number"])
	require.Equal(t, "UPI", doc["payment_method"])
	require.Equal(t, 75.0, doc["subtotal"])
	require.Equal(t, 5.0, doc["discount"])
	require.Equal(t, 70.0, doc["total"])
	require.Equal(t, "less spicy", doc["notes"])
	require.Equal(t, "placed", doc["status"])

	items, ok := doc["items"].([]interface{})
	require.True(t, ok, "items should be a slice, got %T", doc["items"])
	require.Len(t, items, 2)

	first, ok := items[0].(bson.M)
	require.True(t, ok, "item should be a document, got %T", items[0])
	require.Equal(t, "Tea", first["name"])
	require.Equal(t, 20.0, first["price"])
	require.EqualValues(t, 2, first["quantity"])
}
