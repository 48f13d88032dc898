package web

import "net/http"

// listWarehouses handles GET /warehouse.
func (h *Handler) listWarehouses(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListWarehouses(r.Context())
	if err != nil {
		writeError(w, r, "Failed to fetch warehouses: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.Warehouses)
}

// listSuppliers handles GET /supplier.
func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListSuppliers(r.Context())
	if err != nil {
		writeError(w, r, "Failed to fetch suppliers: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"suppliers": result.Suppliers})
}

// createSupplier handles POST /supplier.
func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, r, "Supplier name is required", "VALIDATION", http.StatusBadRequest)
		return
	}

	id, err := h.svc.CreateSupplier(r.Context(), req.Name)
	if err != nil {
		writeEngineError(w, r, "", err)
		return
	}
	writeJSON(w, map[string]any{"success": true, "id": id})
}
