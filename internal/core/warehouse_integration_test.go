package core_test

import (
	"context"
	"errors"
	"testing"

	"warehouse-inventory/internal/core"
)

func TestWarehouse_ListAggregatesStock(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewWarehouseService(pool)
	_, warehouseID := seedProductWithStock(t, ctx, pool, 10)

	// A second product in the same warehouse and an empty warehouse.
	var otherProduct int
	if err := pool.QueryRow(ctx, `
		INSERT INTO products (sku, name, acquire_cost, price)
		VALUES ('SKU-TEST02', 'Spare Part', 2, 5) RETURNING id
	`).Scan(&otherProduct); err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	if _, err := pool.Exec(ctx,
		"INSERT INTO inventory (product_id, warehouse_id, quantity) VALUES ($1, $2, 4)",
		otherProduct, warehouseID); err != nil {
		t.Fatalf("Failed to seed inventory: %v", err)
	}
	if _, err := pool.Exec(ctx, "INSERT INTO warehouses (name) VALUES ('Annex')"); err != nil {
		t.Fatalf("Failed to seed warehouse: %v", err)
	}

	warehouses, err := svc.GetWarehouses(ctx)
	if err != nil {
		t.Fatalf("GetWarehouses failed: %v", err)
	}
	if len(warehouses) != 2 {
		t.Fatalf("Expected 2 warehouses, got %d", len(warehouses))
	}
	byName := map[string]int{}
	for _, w := range warehouses {
		byName[w.WarehouseName] = w.Quantity
	}
	if byName["Main"] != 14 || byName["Annex"] != 0 {
		t.Errorf("Unexpected aggregation: %v", byName)
	}
}

func TestSupplier_CreateAndList(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewSupplierService(pool)

	id, err := svc.CreateSupplier(ctx, "Acme Supplies")
	if err != nil {
		t.Fatalf("CreateSupplier failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected non-zero supplier id")
	}

	suppliers, err := svc.GetSuppliers(ctx)
	if err != nil {
		t.Fatalf("GetSuppliers failed: %v", err)
	}
	if len(suppliers) != 1 || suppliers[0].Name != "Acme Supplies" {
		t.Errorf("Unexpected suppliers: %+v", suppliers)
	}
}

func TestSupplier_CreateRequiresName(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewSupplierService(pool)

	_, err := svc.CreateSupplier(ctx, "")
	var valErr *core.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}
