package core_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"warehouse-inventory/internal/core"
)

func TestOrder_CreateAndGet(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewOrderService(pool)
	productID, warehouseID := seedProductWithStock(t, ctx, pool, 10)

	orderID, err := svc.CreateOrder(ctx, core.OrderInput{
		OrderNumber:  "ORD-A1B2C3",
		CustomerName: "Acme Corp",
		Items: []core.OrderItemInput{
			{ProductID: productID, Qty: 3},
			{ProductID: productID, Qty: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	detail, err := svc.GetOrder(ctx, orderID)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if detail == nil {
		t.Fatal("Expected order detail, got nil")
	}
	if detail.OrderNumber != "ORD-A1B2C3" || detail.Status != "pending" {
		t.Errorf("Unexpected header: number=%s status=%s", detail.OrderNumber, detail.Status)
	}
	if detail.CustomerName == nil || *detail.CustomerName != "Acme Corp" {
		t.Errorf("Expected customer Acme Corp, got %v", detail.CustomerName)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(detail.Items))
	}
	if detail.Items[0].Name != "Test Widget" || detail.Items[0].SKU != "SKU-TEST01" {
		t.Errorf("Unexpected item: %+v", detail.Items[0])
	}

	// Capturing an order must never touch the stock ledger.
	if qty := ledgerQty(t, ctx, pool, productID, warehouseID); qty != 10 {
		t.Errorf("Expected ledger untouched at 10, got %d", qty)
	}
}

func TestOrder_InvalidItemRollsBack(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewOrderService(pool)
	productID, _ := seedProductWithStock(t, ctx, pool, 10)

	_, err := svc.CreateOrder(ctx, core.OrderInput{
		OrderNumber: "ORD-BAD001",
		Items: []core.OrderItemInput{
			{ProductID: productID, Qty: 2},
			{ProductID: productID, Qty: 0},
		},
	})
	var itemErr *core.InvalidItemError
	if !errors.As(err, &itemErr) {
		t.Fatalf("Expected InvalidItemError, got %v", err)
	}

	var count int
	_ = pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	if count != 0 {
		t.Errorf("Expected no orders after rollback, got %d", count)
	}
}

func TestOrder_UnknownProductReference(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewOrderService(pool)
	productID, _ := seedProductWithStock(t, ctx, pool, 10)

	_, err := svc.CreateOrder(ctx, core.OrderInput{
		OrderNumber: "ORD-NOPROD",
		Items: []core.OrderItemInput{
			{ProductID: productID, Qty: 1},
			{ProductID: 99999, Qty: 1},
		},
	})
	var notFound *core.ProductNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected ProductNotFoundError, got %v", err)
	}
	if notFound.ProductID != 99999 {
		t.Errorf("Expected error to identify product 99999, got %d", notFound.ProductID)
	}

	var count int
	_ = pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	if count != 0 {
		t.Errorf("Expected no orders after rollback, got %d", count)
	}
}

func TestOrder_ListNewestFirst(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewOrderService(pool)
	productID, _ := seedProductWithStock(t, ctx, pool, 10)

	for _, num := range []string{"ORD-000001", "ORD-000002"} {
		if _, err := svc.CreateOrder(ctx, core.OrderInput{
			OrderNumber: num,
			Items:       []core.OrderItemInput{{ProductID: productID, Qty: 1}},
		}); err != nil {
			t.Fatalf("CreateOrder %s failed: %v", num, err)
		}
	}

	orders, err := svc.GetOrders(ctx)
	if err != nil {
		t.Fatalf("GetOrders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("Expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID < orders[1].ID {
		t.Errorf("Expected newest order first, got ids %d, %d", orders[0].ID, orders[1].ID)
	}
	if orders[0].TotalItems != 1 {
		t.Errorf("Expected total_items 1, got %d", orders[0].TotalItems)
	}
}

func TestOrder_RepeatedReadsIdentical(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewOrderService(pool)
	productID, _ := seedProductWithStock(t, ctx, pool, 10)

	orderID, err := svc.CreateOrder(ctx, core.OrderInput{
		OrderNumber: "ORD-REPEAT",
		Items:       []core.OrderItemInput{{ProductID: productID, Qty: 2}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	first, err := svc.GetOrder(ctx, orderID)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	second, err := svc.GetOrder(ctx, orderID)
	if err != nil {
		t.Fatalf("GetOrder failed on repeat: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated read differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestOrder_GetMissingReturnsNil(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewOrderService(pool)

	detail, err := svc.GetOrder(ctx, 424242)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if detail != nil {
		t.Errorf("Expected nil for missing order, got %+v", detail)
	}
}

func TestOrder_Delete(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()
	svc := core.NewOrderService(pool)
	productID, _ := seedProductWithStock(t, ctx, pool, 10)

	orderID, err := svc.CreateOrder(ctx, core.OrderInput{
		OrderNumber: "ORD-DEL001",
		Items:       []core.OrderItemInput{{ProductID: productID, Qty: 2}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	if err := svc.DeleteOrder(ctx, orderID); err != nil {
		t.Fatalf("DeleteOrder failed: %v", err)
	}

	var orders, items int
	_ = pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&orders)
	_ = pool.QueryRow(ctx, "SELECT COUNT(*) FROM order_items").Scan(&items)
	if orders != 0 || items != 0 {
		t.Errorf("Expected order and items gone, got %d orders, %d items", orders, items)
	}
}
