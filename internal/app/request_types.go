package app

import "github.com/shopspring/decimal"

// CreateShipmentRequest is the input for creating a shipment. Exactly one
// of WarehouseID / WarehouseName identifies the warehouse: a positive id
// references an existing row, a name creates a new one inside the
// shipment transaction.
type CreateShipmentRequest struct {
	ShipmentType      string
	WarehouseID       int
	WarehouseName     string
	WarehouseLocation string
	Reference         string
	Items             []ShipmentItemInput
}

// ShipmentItemInput is one line of a CreateShipmentRequest. ProductID > 0
// references an existing product; otherwise Name and the optional catalog
// fields describe a product to create on the fly.
type ShipmentItemInput struct {
	ProductID   int
	Name        string
	SKU         string
	SupplierID  *int
	AcquireCost decimal.Decimal
	Price       decimal.Decimal
	Qty         int
}

// CreateOrderRequest is the input for creating an order.
type CreateOrderRequest struct {
	OrderNumber  string
	CustomerName string
	Items        []OrderItemInput
}

// OrderItemInput is one line of a CreateOrderRequest.
type OrderItemInput struct {
	ProductID int
	Qty       int
}

// CreateProductRequest is the input for the admin product-creation
// operation, which also creates a warehouse and an initial ledger row.
type CreateProductRequest struct {
	SKU               string
	Name              string
	Description       string
	SupplierID        *int
	AcquireCost       decimal.Decimal
	Price             decimal.Decimal
	WarehouseName     string
	WarehouseLocation string
	Quantity          int
}

// UpdateProductRequest carries the editable product fields; WarehouseID
// plus Quantity, when both present, also overwrite that ledger row.
type UpdateProductRequest struct {
	SKU         string
	Name        string
	Description string
	SupplierID  *int
	AcquireCost decimal.Decimal
	Price       decimal.Decimal
	WarehouseID *int
	Quantity    *int
}
