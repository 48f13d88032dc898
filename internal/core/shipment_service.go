package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShipmentService processes stock movements against the inventory ledger.
// CreateShipment is the only write path for ledger rows outside the admin
// product endpoints.
type ShipmentService interface {
	// CreateShipment applies an IN or OUT movement as a single atomic unit
	// of work and returns the new shipment id. Referenced warehouses and
	// products may be created implicitly inside the same transaction; on
	// any failure nothing persists, including those implicit creations.
	CreateShipment(ctx context.Context, in ShipmentInput) (int, error)

	// GetShipments returns the shipment list view with aggregated item
	// counts and product names.
	GetShipments(ctx context.Context) ([]ShipmentSummary, error)
}

type shipmentService struct {
	pool *pgxpool.Pool
}

func NewShipmentService(pool *pgxpool.Pool) ShipmentService {
	return &shipmentService{pool: pool}
}

// CreateShipment resolves the warehouse and products, validates the line
// items, writes the shipment header and items, and mutates the inventory
// ledger, all within one transaction.
//
// Outbound movements read the ledger row with FOR UPDATE before the
// sufficiency check. The lock is held until commit or rollback, so two
// concurrent OUT shipments against the same (product, warehouse) pair are
// serialized: the second sees the first's decrement and cannot drive the
// quantity negative. Movements on disjoint pairs proceed in parallel.
func (s *shipmentService) CreateShipment(ctx context.Context, in ShipmentInput) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	warehouseID, err := s.resolveWarehouse(ctx, tx, in.Warehouse)
	if err != nil {
		return 0, err
	}

	// Resolve products in list order: verify referenced ids, create the
	// inline-described ones. A later failure rolls the inserts back with
	// everything else.
	productIDs := make([]int, len(in.Items))
	for i, item := range in.Items {
		productIDs[i] = item.ProductID
		if item.ProductID > 0 {
			if err := s.verifyProduct(ctx, tx, item.ProductID); err != nil {
				return 0, err
			}
			continue
		}
		if item.ProductID == 0 && item.Name != "" {
			id, err := s.createProduct(ctx, tx, item)
			if err != nil {
				return 0, err
			}
			productIDs[i] = id
		}
	}
	for i, item := range in.Items {
		if productIDs[i] <= 0 || item.Qty <= 0 {
			return 0, &InvalidItemError{Index: i}
		}
	}

	var reference *string
	if in.Reference != "" {
		reference = &in.Reference
	}
	var shipmentID int
	err = tx.QueryRow(ctx, `
		INSERT INTO shipments (shipment_type, warehouse_id, reference)
		VALUES ($1, $2, $3)
		RETURNING id
	`, in.Type, warehouseID, reference).Scan(&shipmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert shipment: %w", err)
	}

	for i, item := range in.Items {
		productID := productIDs[i]
		_, err = tx.Exec(ctx, `
			INSERT INTO shipment_items (shipment_id, product_id, qty)
			VALUES ($1, $2, $3)
		`, shipmentID, productID, item.Qty)
		if err != nil {
			return 0, fmt.Errorf("failed to insert shipment item: %w", err)
		}

		if in.Type == ShipmentIn {
			if err := s.applyInbound(ctx, tx, productID, warehouseID, item.Qty); err != nil {
				return 0, err
			}
		} else {
			if err := s.applyOutbound(ctx, tx, productID, warehouseID, item.Qty); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit shipment: %w", err)
	}
	return shipmentID, nil
}

// resolveWarehouse verifies an existing warehouse id or creates a new
// warehouse row from the name/location pair.
func (s *shipmentService) resolveWarehouse(ctx context.Context, tx pgx.Tx, ref WarehouseRef) (int, error) {
	if ref.ID > 0 {
		var id int
		err := tx.QueryRow(ctx, "SELECT id FROM warehouses WHERE id = $1", ref.ID).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, ErrWarehouseNotFound
			}
			return 0, fmt.Errorf("failed to resolve warehouse: %w", err)
		}
		return id, nil
	}

	var location *string
	if ref.Location != "" {
		location = &ref.Location
	}
	var id int
	err := tx.QueryRow(ctx, `
		INSERT INTO warehouses (name, location)
		VALUES ($1, $2)
		RETURNING id
	`, ref.Name, location).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create warehouse: %w", err)
	}
	return id, nil
}

// verifyProduct confirms a referenced product id exists.
func (s *shipmentService) verifyProduct(ctx context.Context, tx pgx.Tx, productID int) error {
	var id int
	err := tx.QueryRow(ctx, "SELECT id FROM products WHERE id = $1", productID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &ProductNotFoundError{ProductID: productID}
		}
		return fmt.Errorf("failed to resolve product: %w", err)
	}
	return nil
}

// createProduct inserts a product described inline in a shipment item,
// generating a SKU when the caller did not supply one.
func (s *shipmentService) createProduct(ctx context.Context, tx pgx.Tx, item ShipmentLineInput) (int, error) {
	sku := item.SKU
	if sku == "" {
		sku = generateSKU()
	}
	var id int
	err := tx.QueryRow(ctx, `
		INSERT INTO products (sku, name, supplier_id, acquire_cost, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, sku, item.Name, item.SupplierID, item.AcquireCost, item.Price).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create product %q: %w", item.Name, err)
	}
	return id, nil
}

// applyInbound upserts the ledger row, adding qty to any existing quantity.
func (s *shipmentService) applyInbound(ctx context.Context, tx pgx.Tx, productID, warehouseID, qty int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO inventory (product_id, warehouse_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity
	`, productID, warehouseID, qty)
	if err != nil {
		return fmt.Errorf("failed to increase inventory: %w", err)
	}
	return nil
}

// applyOutbound locks the ledger row, checks sufficiency, and decrements.
// A missing row means quantity 0. The row lock persists to transaction
// end, serializing the check-then-decrement against concurrent OUTs.
func (s *shipmentService) applyOutbound(ctx context.Context, tx pgx.Tx, productID, warehouseID, qty int) error {
	var available int
	err := tx.QueryRow(ctx, `
		SELECT quantity FROM inventory
		WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE
	`, productID, warehouseID).Scan(&available)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to lock inventory row: %w", err)
	}

	if available < qty {
		return &InsufficientStockError{ProductID: productID}
	}

	_, err = tx.Exec(ctx, `
		UPDATE inventory SET quantity = quantity - $1
		WHERE product_id = $2 AND warehouse_id = $3
	`, qty, productID, warehouseID)
	if err != nil {
		return fmt.Errorf("failed to decrease inventory: %w", err)
	}
	return nil
}

func (s *shipmentService) GetShipments(ctx context.Context) ([]ShipmentSummary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT s.id, s.shipment_type, s.reference, s.created_at,
		       w.name AS warehouse,
		       COALESCE(SUM(si.qty), 0) AS total_items,
		       string_agg(DISTINCT p.name, ', ') AS products
		FROM shipments s
		JOIN warehouses w ON s.warehouse_id = w.id
		LEFT JOIN shipment_items si ON s.id = si.shipment_id
		LEFT JOIN products p ON si.product_id = p.id
		GROUP BY s.id, w.name
		ORDER BY s.created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}
	defer rows.Close()

	var shipments []ShipmentSummary
	for rows.Next() {
		var sh ShipmentSummary
		if err := rows.Scan(&sh.ID, &sh.ShipmentType, &sh.Reference, &sh.CreatedAt,
			&sh.Warehouse, &sh.TotalItems, &sh.Products); err != nil {
			return nil, fmt.Errorf("failed to scan shipment: %w", err)
		}
		shipments = append(shipments, sh)
	}
	return shipments, nil
}
