package web

import (
	"net/http"

	"warehouse-inventory/internal/app"
)

type orderRequest struct {
	OrderNumber  string             `json:"order_number"`
	CustomerName string             `json:"customer_name"`
	Items        []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ProductID int `json:"product_id"`
	Qty       int `json:"qty"`
}

// createOrder handles POST /orders. Orders do not decrement stock; they
// are fulfilled later through OUT shipments.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.OrderNumber == "" || len(req.Items) == 0 {
		writeError(w, r, "order_number and items required", "VALIDATION", http.StatusBadRequest)
		return
	}

	items := make([]app.OrderItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = app.OrderItemInput{ProductID: it.ProductID, Qty: it.Qty}
	}

	orderID, err := h.svc.CreateOrder(r.Context(), app.CreateOrderRequest{
		OrderNumber:  req.OrderNumber,
		CustomerName: req.CustomerName,
		Items:        items,
	})
	if err != nil {
		writeEngineError(w, r, "Failed to create order: ", err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, map[string]any{"order_id": orderID})
}

// getOrders handles GET /orders: detail view when an id query parameter
// is present, list view otherwise. An unknown id yields an empty object.
func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		order, err := h.svc.GetOrder(r.Context(), id)
		if err != nil {
			writeError(w, r, "Failed to fetch order: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
			return
		}
		if order == nil {
			writeJSON(w, map[string]any{})
			return
		}
		writeJSON(w, order)
		return
	}

	result, err := h.svc.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, "Failed to fetch orders: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.Orders)
}

// deleteOrder handles DELETE /orders?id= (admin only).
func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, r, "Failed to delete order: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"ok": true, "deleted_order": id})
}

// newOrderNumber handles GET /orders/new-number.
func (h *Handler) newOrderNumber(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"order_number": h.svc.NewOrderNumber()})
}
