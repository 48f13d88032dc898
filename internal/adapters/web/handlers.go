package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"warehouse-inventory/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	router    chi.Router
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{svc: svc, jwtSecret: jwtSecret}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, "Not found", "NOT_FOUND", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, "method not allowed", "METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed)
	})

	// ── Health (public) ───────────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── Auth ──────────────────────────────────────────────────────────────────
	r.Post("/auth", h.authPost)
	r.Get("/auth", h.authGet)

	// ── Public reads ──────────────────────────────────────────────────────────
	r.Get("/products", h.getProducts)
	r.Get("/orders", h.getOrders)
	r.Get("/orders/new-number", h.newOrderNumber)
	r.Get("/shipments", h.listShipments)
	r.Get("/supplier", h.listSuppliers)
	r.Post("/supplier", h.createSupplier)
	r.Get("/warehouse", h.listWarehouses)

	// ── Authenticated writes ──────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Post("/orders", h.createOrder)
		r.Post("/shipments", h.createShipment)

		// Admin-only mutations.
		r.Group(func(r chi.Router) {
			r.Use(h.RequireAdmin)
			r.Post("/products", h.createProduct)
			r.Put("/products", h.updateProduct)
			r.Delete("/products", h.deleteProduct)
			r.Delete("/orders", h.deleteOrder)
		})
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// idParam extracts the numeric id query parameter. ok is false when the
// parameter is absent; malformed values report a validation error.
func idParam(w http.ResponseWriter, r *http.Request) (id int, ok bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		writeError(w, r, "id required", "VALIDATION", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, "id must be an integer", "VALIDATION", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
