package controller

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bitsbites/backend/models"
	"github.com/bitsbites/backend/services"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
)

// OrderController exposes the order endpoints over HTTP.
type OrderController struct {
	service *services.OrderService
	log     *slog.Logger
}

func NewOrderController(service *services.OrderService, log *slog.Logger) *OrderController {
	return &OrderController{service: service, log: log}
}

// CreateOrder handles POST /orders.
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderID, total, err := c.service.SubmitOrder(r.Context(), req)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.Is(err, models.ErrInvalidPaymentMethod):
			writeError(w, http.StatusBadRequest, "Invalid payment method. Use COD or UPI.")
		case errors.As(err, &verrs):
			writeError(w, http.StatusBadRequest, "Invalid order payload: "+verrs.Error())
		default:
			c.log.Error("order submission failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Order could not be saved")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"orderId": orderID,
		"total":   total,
	})
}

// GetOrders handles GET /orders.
func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = services.DefaultListLimit
	}

	docs, err := c.service.ListOrders(r.Context(), limit)
	if err != nil {
		c.log.Error("order listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error retrieving orders")
		return
	}
	if docs == nil {
		docs = []bson.M{}
	}

	writeJSON(w, http.StatusOK, docs)
}
