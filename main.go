package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/bitsbites/backend/config"
	controller "github.com/bitsbites/backend/controllers"
	"github.com/bitsbites/backend/helper"
	middleware "github.com/bitsbites/backend/middlewares"
	routes "github.com/bitsbites/backend/routes"
	"github.com/bitsbites/backend/services"
	"github.com/bitsbites/backend/store"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg := config.Load()
	logger := helper.NewLogger(cfg.LogFile)

	var db *mongo.Database
	client, err := config.ConnectMongo(context.Background(), cfg.DatabaseURL)
	if err != nil {
		// The server still boots so /test can report the degraded state;
		// order writes fail with a storage error until the database is back.
		logger.Error("mongodb connection failed", "error", err)
	} else {
		db = client.Database(cfg.DatabaseName)
		logger.Info("connected to mongodb", "database", cfg.DatabaseName)
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("mongodb disconnect failed", "error", err)
			}
		}()
	}

	docStore := store.NewMongoStore(db)
	orderService := services.NewOrderService(docStore, logger)

	orderController := controller.NewOrderController(orderService, logger)
	menuController := controller.NewMenuController()
	healthController := controller.NewHealthController(docStore, cfg.DatabaseURL != "")

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))
	routes.PublicRoutes(router, orderController, menuController, healthController)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Accept", "Authorization", "Content-Type"}),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      cors(router),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
