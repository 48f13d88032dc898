package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WarehouseService provides the warehouse list view.
type WarehouseService interface {
	// GetWarehouses returns all warehouses with their total on-hand
	// quantity across all products.
	GetWarehouses(ctx context.Context) ([]WarehouseSummary, error)
}

type warehouseService struct {
	pool *pgxpool.Pool
}

func NewWarehouseService(pool *pgxpool.Pool) WarehouseService {
	return &warehouseService{pool: pool}
}

func (s *warehouseService) GetWarehouses(ctx context.Context) ([]WarehouseSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT w.id AS warehouse_id, w.name AS warehouse_name, w.location,
		       COALESCE(SUM(i.quantity), 0) AS quantity
		FROM warehouses w
		LEFT JOIN inventory i ON i.warehouse_id = w.id
		GROUP BY w.id
		ORDER BY w.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []WarehouseSummary
	for rows.Next() {
		var w WarehouseSummary
		if err := rows.Scan(&w.WarehouseID, &w.WarehouseName, &w.Location, &w.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, nil
}
