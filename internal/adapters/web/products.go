package web

import (
	"net/http"

	"warehouse-inventory/internal/app"

	"github.com/shopspring/decimal"
)

type productRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	SupplierID        *int            `json:"supplier_id"`
	AcquireCost       decimal.Decimal `json:"acquire_cost"`
	Price             decimal.Decimal `json:"price"`
	WarehouseName     string          `json:"warehouseName"`
	WarehouseLocation string          `json:"warehouseLocation"`
	Quantity          int             `json:"quantity"`
}

// getProducts handles GET /products: detail view when an id query
// parameter is present, list view otherwise. An unknown id yields an
// empty object.
func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		product, err := h.svc.GetProduct(r.Context(), id)
		if err != nil {
			writeError(w, r, "Failed to fetch product: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
			return
		}
		if product == nil {
			writeJSON(w, map[string]any{})
			return
		}
		writeJSON(w, product)
		return
	}

	result, err := h.svc.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, "Failed to fetch products: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.Products)
}

// createProduct handles POST /products (admin only). It creates the
// product, a new warehouse, and the initial stock row in one transaction.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SKU == "" || req.Name == "" {
		writeError(w, r, "sku and name required", "VALIDATION", http.StatusBadRequest)
		return
	}

	result, err := h.svc.CreateProduct(r.Context(), app.CreateProductRequest{
		SKU:               req.SKU,
		Name:              req.Name,
		Description:       req.Description,
		SupplierID:        req.SupplierID,
		AcquireCost:       req.AcquireCost,
		Price:             req.Price,
		WarehouseName:     req.WarehouseName,
		WarehouseLocation: req.WarehouseLocation,
		Quantity:          req.Quantity,
	})
	if err != nil {
		writeEngineError(w, r, "", err)
		return
	}

	writeJSON(w, map[string]any{
		"success":      true,
		"product_id":   result.ProductID,
		"warehouse_id": result.WarehouseID,
	})
}

// updateProduct handles PUT /products?id= (admin only).
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req struct {
		SKU         string          `json:"sku"`
		Name        string          `json:"name"`
		Description string          `json:"description"`
		SupplierID  *int            `json:"supplier_id"`
		AcquireCost decimal.Decimal `json:"acquire_cost"`
		Price       decimal.Decimal `json:"price"`
		WarehouseID *int            `json:"warehouse_id"`
		Quantity    *int            `json:"quantity"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.UpdateProduct(r.Context(), id, app.UpdateProductRequest{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		SupplierID:  req.SupplierID,
		AcquireCost: req.AcquireCost,
		Price:       req.Price,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
	})
	if err != nil {
		writeEngineError(w, r, "", err)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

// deleteProduct handles DELETE /products?id= (admin only).
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, "Failed to delete product: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}
