package core

import (
	"errors"
	"fmt"
)

// ErrWarehouseNotFound is returned when a shipment references a warehouse
// id that does not exist. The enclosing transaction is rolled back.
var ErrWarehouseNotFound = errors.New("warehouse does not exist")

// ValidationError reports a missing or malformed required field. It is
// raised before any storage access is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InvalidItemError reports a line item with a non-positive or missing
// quantity, or an item resolving to no product. Index is the zero-based
// position of the offending item in the request.
type InvalidItemError struct {
	Index int
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item at position %d", e.Index+1)
}

// ProductNotFoundError reports a line item referencing a product id that
// does not exist. The enclosing transaction is rolled back.
type ProductNotFoundError struct {
	ProductID int
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product ID %d does not exist", e.ProductID)
}

// InsufficientStockError reports an outbound quantity exceeding the
// locked on-hand quantity for a (product, warehouse) pair.
type InsufficientStockError struct {
	ProductID int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product ID %d", e.ProductID)
}
