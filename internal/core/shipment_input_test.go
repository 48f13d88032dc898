package core

import (
	"regexp"
	"testing"
)

func TestShipmentInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   ShipmentInput
		wantErr bool
	}{
		{
			name: "valid inbound by warehouse id",
			input: ShipmentInput{
				Type:      ShipmentIn,
				Warehouse: WarehouseRef{ID: 1},
				Items:     []ShipmentLineInput{{ProductID: 1, Qty: 2}},
			},
		},
		{
			name: "valid outbound by warehouse name",
			input: ShipmentInput{
				Type:      ShipmentOut,
				Warehouse: WarehouseRef{Name: "North"},
				Items:     []ShipmentLineInput{{ProductID: 1, Qty: 2}},
			},
		},
		{
			name: "unknown shipment type",
			input: ShipmentInput{
				Type:      "TRANSFER",
				Warehouse: WarehouseRef{ID: 1},
				Items:     []ShipmentLineInput{{ProductID: 1, Qty: 2}},
			},
			wantErr: true,
		},
		{
			name: "missing type",
			input: ShipmentInput{
				Warehouse: WarehouseRef{ID: 1},
				Items:     []ShipmentLineInput{{ProductID: 1, Qty: 2}},
			},
			wantErr: true,
		},
		{
			name: "missing warehouse reference",
			input: ShipmentInput{
				Type:  ShipmentIn,
				Items: []ShipmentLineInput{{ProductID: 1, Qty: 2}},
			},
			wantErr: true,
		},
		{
			name: "empty items",
			input: ShipmentInput{
				Type:      ShipmentIn,
				Warehouse: WarehouseRef{ID: 1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected a validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestGenerateSKUFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^SKU-\d{6}$`)
	for i := 0; i < 50; i++ {
		sku := generateSKU()
		if !pattern.MatchString(sku) {
			t.Fatalf("Generated SKU %q does not match SKU-NNNNNN", sku)
		}
	}
}

func TestNewOrderNumberFormat(t *testing.T) {
	svc := &orderService{}
	pattern := regexp.MustCompile(`^ORD-[0-9A-F]{6}$`)
	for i := 0; i < 50; i++ {
		num := svc.NewOrderNumber()
		if !pattern.MatchString(num) {
			t.Fatalf("Generated order number %q does not match ORD-XXXXXX", num)
		}
	}
}
