package core

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderService captures customer orders as header + line items.
//
// Orders do not mutate the inventory ledger on creation: an order is a
// reservation fulfilled later by an OUT shipment. This asymmetry with
// ShipmentService is deliberate and preserved from the observed behavior
// of the system this one replaces.
type OrderService interface {
	// CreateOrder writes the order header and its items atomically and
	// returns the new order id.
	CreateOrder(ctx context.Context, in OrderInput) (int, error)

	// GetOrder returns the order detail view, or nil when no order with
	// the given id exists.
	GetOrder(ctx context.Context, id int) (*OrderDetail, error)

	// GetOrders returns the order list view with aggregated item counts
	// and product names, newest first.
	GetOrders(ctx context.Context) ([]OrderSummary, error)

	// DeleteOrder removes an order and its items in one transaction.
	DeleteOrder(ctx context.Context, id int) error

	// NewOrderNumber generates a fresh ORD-XXXXXX candidate number.
	NewOrderNumber() string
}

type orderService struct {
	pool *pgxpool.Pool
}

func NewOrderService(pool *pgxpool.Pool) OrderService {
	return &orderService{pool: pool}
}

func (s *orderService) CreateOrder(ctx context.Context, in OrderInput) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var customerName *string
	if in.CustomerName != "" {
		customerName = &in.CustomerName
	}
	var orderID int
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, customer_name)
		VALUES ($1, $2)
		RETURNING id
	`, in.OrderNumber, customerName).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	for i, item := range in.Items {
		if item.ProductID <= 0 || item.Qty <= 0 {
			return 0, &InvalidItemError{Index: i}
		}
		var productID int
		err = tx.QueryRow(ctx, "SELECT id FROM products WHERE id = $1", item.ProductID).Scan(&productID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, &ProductNotFoundError{ProductID: item.ProductID}
			}
			return 0, fmt.Errorf("failed to resolve product: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, qty)
			VALUES ($1, $2, $3)
		`, orderID, item.ProductID, item.Qty)
		if err != nil {
			return 0, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit order: %w", err)
	}
	return orderID, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int) (*OrderDetail, error) {
	var o OrderDetail
	err := s.pool.QueryRow(ctx, `
		SELECT id, order_number, customer_name, status, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.Status, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT oi.qty, p.sku, p.name
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it OrderItemView
		if err := rows.Scan(&it.Qty, &it.SKU, &it.Name); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	return &o, nil
}

func (s *orderService) GetOrders(ctx context.Context) ([]OrderSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT o.id, o.order_number, o.customer_name, o.status, o.created_at,
		       COALESCE(SUM(oi.qty), 0) AS total_items,
		       string_agg(DISTINCT p.name, ', ') AS products
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN products p ON p.id = oi.product_id
		GROUP BY o.id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []OrderSummary
	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.Status,
			&o.CreatedAt, &o.TotalItems, &o.Products); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM order_items WHERE order_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM orders WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order deletion: %w", err)
	}
	return nil
}

// NewOrderNumber returns "ORD-" plus 3 random bytes hex-encoded and
// uppercased, e.g. "ORD-A1B2C3".
func (s *orderService) NewOrderNumber() string {
	var b [3]byte
	_, _ = rand.Read(b[:])
	return "ORD-" + strings.ToUpper(hex.EncodeToString(b[:]))
}
