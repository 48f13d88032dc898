package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"warehouse-inventory/internal/core"
)

func TestWriteEngineError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "validation error",
			err:        &core.ValidationError{Message: "shipment_type, warehouse, and items are required"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION",
			wantError:  "Failed to create shipment: shipment_type, warehouse, and items are required",
		},
		{
			name:       "invalid item",
			err:        &core.InvalidItemError{Index: 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ITEM",
			wantError:  "Failed to create shipment: invalid item at position 2",
		},
		{
			name:       "insufficient stock",
			err:        &core.InsufficientStockError{ProductID: 42},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INSUFFICIENT_STOCK",
			wantError:  "Failed to create shipment: insufficient stock for product ID 42",
		},
		{
			name:       "unknown product",
			err:        &core.ProductNotFoundError{ProductID: 99999},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PRODUCT_NOT_FOUND",
			wantError:  "Failed to create shipment: product ID 99999 does not exist",
		},
		{
			name:       "unknown warehouse",
			err:        fmt.Errorf("resolving warehouse: %w", core.ErrWarehouseNotFound),
			wantStatus: http.StatusBadRequest,
			wantCode:   "WAREHOUSE_NOT_FOUND",
		},
		{
			name:       "storage failure",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/shipments", nil)
			rec := httptest.NewRecorder()
			writeEngineError(rec, req, "Failed to create shipment: ", tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("Expected JSON error body: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, body.Code)
			}
			if tt.wantError != "" && body.Error != tt.wantError {
				t.Errorf("Expected error %q, got %q", tt.wantError, body.Error)
			}
		})
	}
}
