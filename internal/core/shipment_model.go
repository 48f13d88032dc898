package core

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Shipment types. A shipment is a single atomic stock-movement event.
const (
	ShipmentIn  = "IN"
	ShipmentOut = "OUT"
)

// WarehouseRef names the warehouse a shipment moves stock through.
// ID > 0 references an existing warehouse; otherwise Name (with optional
// Location) describes a warehouse to create inside the shipment
// transaction. Repeated names are not deduplicated: each implicit
// creation produces a distinct warehouse row.
type WarehouseRef struct {
	ID       int
	Name     string
	Location string
}

// ShipmentLineInput is one line item of a shipment request. ProductID > 0
// references an existing product; otherwise Name (plus the optional
// catalog fields) describes a product to create on the fly. A SKU is
// generated when absent. Qty must be a positive integer.
type ShipmentLineInput struct {
	ProductID   int
	Name        string
	SKU         string
	SupplierID  *int
	AcquireCost decimal.Decimal
	Price       decimal.Decimal
	Qty         int
}

// ShipmentInput is the full shipment-creation request.
type ShipmentInput struct {
	Type      string
	Warehouse WarehouseRef
	Reference string
	Items     []ShipmentLineInput
}

// Validate checks the request shape before any storage access: type must
// be IN or OUT, a warehouse reference must be present, and there must be
// at least one item. Per-item quantity checks happen inside the shipment
// transaction so they roll back implicit creations with everything else.
func (in *ShipmentInput) Validate() error {
	if in.Type != ShipmentIn && in.Type != ShipmentOut {
		return &ValidationError{Message: "shipment_type must be IN or OUT"}
	}
	if in.Warehouse.ID <= 0 && in.Warehouse.Name == "" {
		return &ValidationError{Message: "shipment_type, warehouse, and items are required"}
	}
	if len(in.Items) == 0 {
		return &ValidationError{Message: "shipment_type, warehouse, and items are required"}
	}
	return nil
}

// ShipmentSummary is one row of the shipment list view.
type ShipmentSummary struct {
	ID           int       `json:"id"`
	ShipmentType string    `json:"shipment_type"`
	Reference    *string   `json:"reference"`
	CreatedAt    time.Time `json:"created_at"`
	Warehouse    string    `json:"warehouse"`
	TotalItems   int       `json:"total_items"`
	Products     *string   `json:"products"`
}

// generateSKU produces a random business key of the form SKU-NNNNNN for
// products created implicitly without a caller-supplied SKU.
func generateSKU() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return fmt.Sprintf("SKU-%06d", 100000+binary.BigEndian.Uint32(b[:])%900000)
}
