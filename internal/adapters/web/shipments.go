package web

import (
	"net/http"

	"warehouse-inventory/internal/app"

	"github.com/shopspring/decimal"
)

// shipmentRequest is the POST /shipments payload. Field names mirror the
// browser client: warehouse_id references an existing warehouse,
// warehouseName/warehouseLocation create a new one; items either
// reference a product_id or describe a product to create.
type shipmentRequest struct {
	ShipmentType      string                `json:"shipment_type"`
	WarehouseID       int                   `json:"warehouse_id"`
	WarehouseName     string                `json:"warehouseName"`
	WarehouseLocation string                `json:"warehouseLocation"`
	Reference         string                `json:"reference"`
	Items             []shipmentItemRequest `json:"items"`
}

type shipmentItemRequest struct {
	ProductID   int             `json:"product_id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	SupplierID  *int            `json:"supplier_id"`
	AcquireCost decimal.Decimal `json:"acquire_cost"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty"`
}

// createShipment handles POST /shipments.
func (h *Handler) createShipment(w http.ResponseWriter, r *http.Request) {
	var req shipmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ShipmentType == "" || (req.WarehouseID == 0 && req.WarehouseName == "") || len(req.Items) == 0 {
		writeError(w, r, "shipment_type, warehouse, and items are required", "VALIDATION", http.StatusBadRequest)
		return
	}

	items := make([]app.ShipmentItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = app.ShipmentItemInput{
			ProductID:   it.ProductID,
			Name:        it.Name,
			SKU:         it.SKU,
			SupplierID:  it.SupplierID,
			AcquireCost: it.AcquireCost,
			Price:       it.Price,
			Qty:         it.Qty,
		}
	}

	shipmentID, err := h.svc.CreateShipment(r.Context(), app.CreateShipmentRequest{
		ShipmentType:      req.ShipmentType,
		WarehouseID:       req.WarehouseID,
		WarehouseName:     req.WarehouseName,
		WarehouseLocation: req.WarehouseLocation,
		Reference:         req.Reference,
		Items:             items,
	})
	if err != nil {
		writeEngineError(w, r, "Failed to create shipment: ", err)
		return
	}

	writeJSON(w, map[string]any{"ok": true, "shipment_id": shipmentID})
}

// listShipments handles GET /shipments.
func (h *Handler) listShipments(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListShipments(r.Context())
	if err != nil {
		writeError(w, r, "Failed to fetch shipments: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.Shipments)
}
