package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"repairdesk/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler exposes the ApplicationService over the RPC routes.
type Handler struct {
	svc       app.ApplicationService
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes. Every procedure
// is POST /rpc/<name> with a JSON body; queries that take no input accept an
// empty body.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{
		svc:       svc,
		jwtSecret: jwtSecret,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Metrics)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Health and metrics (public) ──────────────────────────────────────────
	r.Get("/api/health", h.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// ── Procedures (bearer token required, 1 MB body limit) ──────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		// Customers
		r.Post("/rpc/createCustomer", h.createCustomer)
		r.Post("/rpc/updateCustomer", h.updateCustomer)
		r.Post("/rpc/getCustomers", h.getCustomers)
		r.Post("/rpc/getCustomerById", h.getCustomerByID)
		r.Post("/rpc/getCustomerHistory", h.getCustomerHistory)

		// Products and stock
		r.Post("/rpc/createProduct", h.createProduct)
		r.Post("/rpc/updateProduct", h.updateProduct)
		r.Post("/rpc/getProducts", h.getProducts)
		r.Post("/rpc/getProductById", h.getProductByID)
		r.Post("/rpc/getLowStockProducts", h.getLowStockProducts)
		r.Post("/rpc/createStockMovement", h.createStockMovement)
		r.Post("/rpc/getStockMovements", h.getStockMovements)
		r.Post("/rpc/getStockMovementsByProduct", h.getStockMovementsByProduct)

		// Repair services
		r.Post("/rpc/createService", h.createService)
		r.Post("/rpc/updateService", h.updateService)
		r.Post("/rpc/getServices", h.getServices)
		r.Post("/rpc/getServiceById", h.getServiceByID)

		// Transactions
		r.Post("/rpc/createTransaction", h.createTransaction)
		r.Post("/rpc/createTransactionItem", h.createTransactionItem)
		r.Post("/rpc/getTransactions", h.getTransactions)
		r.Post("/rpc/getTransactionById", h.getTransactionByID)

		// Users
		r.Post("/rpc/createUser", h.createUser)
		r.Post("/rpc/getUsers", h.getUsers)
		r.Post("/rpc/getTechnicians", h.getTechnicians)

		// Reports
		r.Post("/rpc/getFinancialReport", h.getFinancialReport)
		r.Post("/rpc/getStockReport", h.getStockReport)
		r.Post("/rpc/getDashboardStats", h.getDashboardStats)

		// Introspection
		r.Post("/rpc/getRequestSchemas", h.getRequestSchemas)
	})

	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// getRequestSchemas returns the JSON Schema of every mutation request type,
// keyed by procedure name.
func (h *Handler) getRequestSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.RequestSchemas())
}

// idRequest is the body of every get-by-id procedure.
type idRequest struct {
	ID int `json:"id"`
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

// decodeID decodes an idRequest body and rejects non-positive ids.
func decodeID(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req idRequest
	if !decodeJSON(w, r, &req) {
		return 0, false
	}
	if req.ID <= 0 {
		writeError(w, r, "id must be a positive integer", "VALIDATION", http.StatusBadRequest)
		return 0, false
	}
	return req.ID, true
}

// requireIdentity returns the authenticated caller, or writes 401 and returns nil.
// RequireAuth guarantees an identity on every /rpc route; this guards direct use.
func (h *Handler) requireIdentity(w http.ResponseWriter, r *http.Request) *Identity {
	id := identityFromContext(r.Context())
	if id == nil {
		writeError(w, r, "authentication required", "UNAUTHORIZED", http.StatusUnauthorized)
	}
	return id
}
