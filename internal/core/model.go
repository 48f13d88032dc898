package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry identified by a unique SKU.
// Created explicitly by an admin or implicitly during shipment intake.
type Product struct {
	ID          int             `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	SupplierID  *int            `json:"supplier_id"`
	AcquireCost decimal.Decimal `json:"acquire_cost"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Warehouse is a physical storage location. Warehouses are never deleted.
type Warehouse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

// Supplier is a simple lookup entity products may reference.
type Supplier struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// User is an authenticated system user.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductSummary is one row of the product list view: catalog fields plus
// total stock summed over all warehouses and their aggregated locations.
type ProductSummary struct {
	SKU         string          `json:"sku"`
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	TotalStock  int             `json:"total_stock"`
	Price       decimal.Decimal `json:"price"`
	AcquireCost decimal.Decimal `json:"acquire_cost"`
	Locations   *string         `json:"locations"`
}

// WarehouseStock is the per-warehouse quantity breakdown for one product.
// Warehouses with no ledger row for the product report quantity 0.
type WarehouseStock struct {
	WarehouseID   int     `json:"warehouse_id"`
	WarehouseName string  `json:"warehouse_name"`
	Location      *string `json:"location"`
	Quantity      int     `json:"quantity"`
}

// ProductDetail is the product detail view: the catalog record joined with
// supplier name, total stock, and the per-warehouse breakdown.
type ProductDetail struct {
	Product
	Supplier   *string          `json:"supplier"`
	TotalStock int              `json:"total_stock"`
	Locations  *string          `json:"locations"`
	Warehouses []WarehouseStock `json:"warehouses"`
}

// WarehouseSummary is one row of the warehouse list view with the total
// quantity on hand across all products.
type WarehouseSummary struct {
	WarehouseID   int     `json:"warehouse_id"`
	WarehouseName string  `json:"warehouse_name"`
	Location      *string `json:"location"`
	Quantity      int     `json:"quantity"`
}
