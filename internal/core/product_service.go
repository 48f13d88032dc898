package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ProductCreateInput is the admin product-creation request. Alongside the
// catalog fields it names a warehouse to create and an initial quantity
// for the new (product, warehouse) ledger row.
type ProductCreateInput struct {
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

// ProductUpdateInput carries the editable product fields. WarehouseID and
// Quantity, when both set, additionally overwrite that ledger row's
// quantity.
type ProductUpdateInput struct {
	SKU         string
	Name        string
	Description string
	SupplierID  *int
	AcquireCost decimal.Decimal
	Price       decimal.Decimal
	WarehouseID *int
	Quantity    *int
}

// ProductService manages the product catalog and its read projections.
type ProductService interface {
	GetProducts(ctx context.Context) ([]ProductSummary, error)
	// GetProduct returns the detail view with per-warehouse quantities,
	// or nil when no product with the given id exists.
	GetProduct(ctx context.Context, id int) (*ProductDetail, error)
	// CreateProduct inserts the product, a new warehouse, and the linking
	// ledger row in one transaction, returning both new ids.
	CreateProduct(ctx context.Context, in ProductCreateInput) (productID, warehouseID int, err error)
	UpdateProduct(ctx context.Context, id int, in ProductUpdateInput) error
	DeleteProduct(ctx context.Context, id int) error
}

type productService struct {
	pool *pgxpool.Pool
}

func NewProductService(pool *pgxpool.Pool) ProductService {
	return &productService{pool: pool}
}

func (s *productService) GetProducts(ctx context.Context) ([]ProductSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT p.sku, p.id, p.name,
		       COALESCE(SUM(i.quantity), 0) AS total_stock,
		       p.price, p.acquire_cost,
		       string_agg(DISTINCT w.location, ', ') AS locations
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.id
		LEFT JOIN warehouses w ON i.warehouse_id = w.id
		GROUP BY p.id
		ORDER BY p.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []ProductSummary
	for rows.Next() {
		var p ProductSummary
		if err := rows.Scan(&p.SKU, &p.ID, &p.Name, &p.TotalStock,
			&p.Price, &p.AcquireCost, &p.Locations); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int) (*ProductDetail, error) {
	var d ProductDetail
	err := s.pool.QueryRow(ctx, `
		SELECT p.id, p.sku, p.name, p.description, p.supplier_id,
		       p.acquire_cost, p.price, p.created_at,
		       s.name AS supplier,
		       COALESCE(SUM(i.quantity), 0) AS total_stock,
		       string_agg(DISTINCT w.location, ', ') AS locations
		FROM products p
		LEFT JOIN suppliers s ON p.supplier_id = s.id
		LEFT JOIN inventory i ON i.product_id = p.id
		LEFT JOIN warehouses w ON i.warehouse_id = w.id
		WHERE p.id = $1
		GROUP BY p.id, s.name
	`, id).Scan(&d.ID, &d.SKU, &d.Name, &d.Description, &d.SupplierID,
		&d.AcquireCost, &d.Price, &d.CreatedAt, &d.Supplier, &d.TotalStock, &d.Locations)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	// Per-warehouse breakdown over all warehouses; missing ledger rows
	// report quantity 0.
	rows, err := s.pool.Query(ctx, `
		SELECT w.id AS warehouse_id, w.name AS warehouse_name, w.location,
		       COALESCE(i.quantity, 0) AS quantity
		FROM warehouses w
		LEFT JOIN inventory i ON i.warehouse_id = w.id AND i.product_id = $1
		ORDER BY w.name
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouse stock: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ws WarehouseStock
		if err := rows.Scan(&ws.WarehouseID, &ws.WarehouseName, &ws.Location, &ws.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse stock: %w", err)
		}
		d.Warehouses = append(d.Warehouses, ws)
	}
	return &d, nil
}

func (s *productService) CreateProduct(ctx context.Context, in ProductCreateInput) (int, int, error) {
	if in.SKU == "" || in.Name == "" {
		return 0, 0, &ValidationError{Message: "sku and name required"}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var description *string
	if in.Description != "" {
		description = &in.Description
	}
	var productID int
	err = tx.QueryRow(ctx, `
		INSERT INTO products (sku, name, description, supplier_id, acquire_cost, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, in.SKU, in.Name, description, in.SupplierID, in.AcquireCost, in.Price).Scan(&productID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert product: %w", err)
	}

	warehouseName := in.WarehouseName
	if warehouseName == "" {
		warehouseName = "Unknown"
	}
	var location *string
	if in.WarehouseLocation != "" {
		location = &in.WarehouseLocation
	}
	var warehouseID int
	err = tx.QueryRow(ctx, `
		INSERT INTO warehouses (name, location)
		VALUES ($1, $2)
		RETURNING id
	`, warehouseName, location).Scan(&warehouseID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert warehouse: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO inventory (product_id, warehouse_id, quantity)
		VALUES ($1, $2, $3)
	`, productID, warehouseID, in.Quantity)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert inventory row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to commit product creation: %w", err)
	}
	return productID, warehouseID, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int, in ProductUpdateInput) error {
	var description *string
	if in.Description != "" {
		description = &in.Description
	}
	_, err := s.pool.Exec(ctx, `
		UPDATE products
		SET sku = $1, name = $2, description = $3, supplier_id = $4,
		    acquire_cost = $5, price = $6
		WHERE id = $7
	`, in.SKU, in.Name, description, in.SupplierID, in.AcquireCost, in.Price, id)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if in.WarehouseID != nil && in.Quantity != nil {
		_, err = s.pool.Exec(ctx, `
			UPDATE inventory SET quantity = $1
			WHERE product_id = $2 AND warehouse_id = $3
		`, *in.Quantity, id, *in.WarehouseID)
		if err != nil {
			return fmt.Errorf("failed to update inventory quantity: %w", err)
		}
	}
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
