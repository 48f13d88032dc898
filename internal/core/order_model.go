package core

import "time"

// OrderItemInput is one (product, quantity) line of an order request.
type OrderItemInput struct {
	ProductID int
	Qty       int
}

// OrderInput is the order-creation request. OrderNumber is caller
// supplied; uniqueness is enforced only by the storage key constraint.
type OrderInput struct {
	OrderNumber  string
	CustomerName string
	Items        []OrderItemInput
}

// Validate checks the request shape before any storage access.
func (in *OrderInput) Validate() error {
	if in.OrderNumber == "" || len(in.Items) == 0 {
		return &ValidationError{Message: "order_number and items required"}
	}
	return nil
}

// OrderSummary is one row of the order list view.
type OrderSummary struct {
	ID           int       `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName *string   `json:"customer_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	TotalItems   int       `json:"total_items"`
	Products     *string   `json:"products"`
}

// OrderItemView is one line of the order detail view.
type OrderItemView struct {
	Qty  int    `json:"qty"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// OrderDetail is the order detail view: the header plus its items.
type OrderDetail struct {
	ID           int             `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName *string         `json:"customer_name"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []OrderItemView `json:"items"`
}
