package web

import (
	"net/http"

	"repairdesk/internal/app"
)

// createProduct handles POST /rpc/createProduct.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req app.CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := h.svc.CreateProduct(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, product)
}

// updateProduct handles POST /rpc/updateProduct.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req app.UpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := h.svc.UpdateProduct(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, product)
}

// getProducts handles POST /rpc/getProducts.
func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.GetProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, products)
}

// getProductByID handles POST /rpc/getProductById. A missing id yields a JSON
// null body with status 200, not an error.
func (h *Handler) getProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeID(w, r)
	if !ok {
		return
	}
	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, product)
}

// getLowStockProducts handles POST /rpc/getLowStockProducts.
func (h *Handler) getLowStockProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.GetLowStockProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, products)
}

// createStockMovement handles POST /rpc/createStockMovement. The authenticated
// caller is recorded as created_by on the movement.
func (h *Handler) createStockMovement(w http.ResponseWriter, r *http.Request) {
	identity := h.requireIdentity(w, r)
	if identity == nil {
		return
	}
	var req app.CreateStockMovementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	movement, err := h.svc.CreateStockMovement(r.Context(), identity.UserID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, movement)
}

// getStockMovements handles POST /rpc/getStockMovements.
func (h *Handler) getStockMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.svc.GetStockMovements(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, movements)
}

// getStockMovementsByProduct handles POST /rpc/getStockMovementsByProduct.
// Movements come back newest-first.
func (h *Handler) getStockMovementsByProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeID(w, r)
	if !ok {
		return
	}
	movements, err := h.svc.GetStockMovementsByProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, movements)
}
