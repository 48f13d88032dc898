package app

import (
	"context"

	"warehouse-inventory/internal/core"
)

// ApplicationService is the single interface the web adapter calls. It
// decouples presentation from business logic; implementations contain no
// HTTP or display concerns. Engines receive caller identity explicitly —
// nothing here reads ambient session state.
type ApplicationService interface {
	// AuthenticateUser verifies credentials and returns a session on success.
	AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error)

	// GetUser returns the user profile by ID.
	GetUser(ctx context.Context, userID int) (*core.User, error)

	// CreateShipment applies an IN/OUT stock movement atomically and
	// returns the new shipment id.
	CreateShipment(ctx context.Context, req CreateShipmentRequest) (int, error)

	// ListShipments returns the shipment list view.
	ListShipments(ctx context.Context) (*ShipmentListResult, error)

	// CreateOrder creates an order header plus items atomically. Orders do
	// not mutate stock; they are fulfilled later by OUT shipments.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (int, error)

	// GetOrder returns the order detail, or nil when the id is unknown.
	GetOrder(ctx context.Context, id int) (*core.OrderDetail, error)

	// ListOrders returns the order list view.
	ListOrders(ctx context.Context) (*OrderListResult, error)

	// DeleteOrder removes an order and its items.
	DeleteOrder(ctx context.Context, id int) error

	// NewOrderNumber generates a fresh ORD-XXXXXX candidate number.
	NewOrderNumber() string

	// ListProducts returns the product list view.
	ListProducts(ctx context.Context) (*ProductListResult, error)

	// GetProduct returns the product detail, or nil when the id is unknown.
	GetProduct(ctx context.Context, id int) (*core.ProductDetail, error)

	// CreateProduct creates a product, a new warehouse, and the initial
	// ledger row in one transaction.
	CreateProduct(ctx context.Context, req CreateProductRequest) (*CreateProductResult, error)

	// UpdateProduct updates editable product fields and, optionally, one
	// ledger row's quantity.
	UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) error

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, id int) error

	// ListWarehouses returns warehouses with aggregated quantities.
	ListWarehouses(ctx context.Context) (*WarehouseListResult, error)

	// ListSuppliers returns all suppliers.
	ListSuppliers(ctx context.Context) (*SupplierListResult, error)

	// CreateSupplier adds a supplier and returns its id.
	CreateSupplier(ctx context.Context, name string) (int, error)
}
