package app

import "warehouse-inventory/internal/core"

// UserSession is returned by AuthenticateUser.
type UserSession struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ShipmentListResult is returned by ListShipments.
type ShipmentListResult struct {
	Shipments []core.ShipmentSummary
}

// OrderListResult is returned by ListOrders.
type OrderListResult struct {
	Orders []core.OrderSummary
}

// ProductListResult is returned by ListProducts.
type ProductListResult struct {
	Products []core.ProductSummary
}

// CreateProductResult carries the ids created by CreateProduct.
type CreateProductResult struct {
	ProductID   int
	WarehouseID int
}

// WarehouseListResult is returned by ListWarehouses.
type WarehouseListResult struct {
	Warehouses []core.WarehouseSummary
}

// SupplierListResult is returned by ListSuppliers.
type SupplierListResult struct {
	Suppliers []core.Supplier
}
