package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SupplierService manages the supplier lookup table.
type SupplierService interface {
	GetSuppliers(ctx context.Context) ([]Supplier, error)
	CreateSupplier(ctx context.Context, name string) (int, error)
}

type supplierService struct {
	pool *pgxpool.Pool
}

func NewSupplierService(pool *pgxpool.Pool) SupplierService {
	return &supplierService{pool: pool}
}

func (s *supplierService) GetSuppliers(ctx context.Context) ([]Supplier, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM suppliers ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		var sp Supplier
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, sp)
	}
	return suppliers, nil
}

func (s *supplierService) CreateSupplier(ctx context.Context, name string) (int, error) {
	if name == "" {
		return 0, &ValidationError{Message: "Supplier name is required"}
	}
	var id int
	err := s.pool.QueryRow(ctx,
		"INSERT INTO suppliers (name) VALUES ($1) RETURNING id", name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert supplier: %w", err)
	}
	return id, nil
}
