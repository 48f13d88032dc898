package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "warehouse-inventory/internal/adapters/web"
	"warehouse-inventory/internal/app"
	"warehouse-inventory/internal/core"
	"warehouse-inventory/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	shipmentService := core.NewShipmentService(pool)
	orderService := core.NewOrderService(pool)
	productService := core.NewProductService(pool)
	warehouseService := core.NewWarehouseService(pool)
	supplierService := core.NewSupplierService(pool)
	userService := core.NewUserService(pool)

	svc := app.NewAppService(shipmentService, orderService, productService,
		warehouseService, supplierService, userService)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
