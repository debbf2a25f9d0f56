package routes

import (
	"net/http"

	controller "github.com/bitsbites/backend/controllers"

	"github.com/gorilla/mux"
)

// PublicRoutes mounts every endpoint. The API has no protected surface.
func PublicRoutes(router *mux.Router, orders *controller.OrderController, menu *controller.MenuController, health *controller.HealthController) {
	router.HandleFunc("/", health.Root).Methods(http.MethodGet)
	router.HandleFunc("/test", health.TestDatabase).Methods(http.MethodGet)

	router.HandleFunc("/products", menu.GetProducts).Methods(http.MethodGet)

	router.HandleFunc("/orders", orders.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders", orders.GetOrders).Methods(http.MethodGet)
}
