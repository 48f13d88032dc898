package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"warehouse-inventory/internal/core"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONStatus writes a JSON response with an explicit status code.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeEngineError maps domain errors to HTTP responses. Business-rule
// failures (validation, invalid items, insufficient stock, unknown
// warehouse or product) are 400; anything else is an unexpected storage
// failure.
// prefix mirrors the upstream API's error wording, e.g.
// "Failed to create shipment: insufficient stock for product ID 42".
func writeEngineError(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	var (
		validationErr *core.ValidationError
		itemErr       *core.InvalidItemError
		stockErr      *core.InsufficientStockError
		productErr    *core.ProductNotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		writeError(w, r, prefix+err.Error(), "VALIDATION", http.StatusBadRequest)
	case errors.As(err, &itemErr):
		writeError(w, r, prefix+err.Error(), "INVALID_ITEM", http.StatusBadRequest)
	case errors.As(err, &stockErr):
		writeError(w, r, prefix+err.Error(), "INSUFFICIENT_STOCK", http.StatusBadRequest)
	case errors.As(err, &productErr):
		writeError(w, r, prefix+err.Error(), "PRODUCT_NOT_FOUND", http.StatusBadRequest)
	case errors.Is(err, core.ErrWarehouseNotFound):
		writeError(w, r, prefix+err.Error(), "WAREHOUSE_NOT_FOUND", http.StatusBadRequest)
	default:
		writeError(w, r, prefix+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}
