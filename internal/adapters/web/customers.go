package web

import (
	"net/http"

	"repairdesk/internal/app"
)

// createCustomer handles POST /rpc/createCustomer.
func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req app.CreateCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	customer, err := h.svc.CreateCustomer(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, customer)
}

// updateCustomer handles POST /rpc/updateCustomer.
func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var req app.UpdateCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	customer, err := h.svc.UpdateCustomer(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, customer)
}

// getCustomers handles POST /rpc/getCustomers.
func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.GetCustomers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, customers)
}

// getCustomerByID handles POST /rpc/getCustomerById. A missing id yields a
// JSON null body with status 200, not an error.
func (h *Handler) getCustomerByID(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeID(w, r)
	if !ok {
		return
	}
	customer, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, customer)
}

// getCustomerHistory handles POST /rpc/getCustomerHistory.
func (h *Handler) getCustomerHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeID(w, r)
	if !ok {
		return
	}
	history, err := h.svc.GetCustomerHistory(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, history)
}
