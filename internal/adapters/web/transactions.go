package web

import (
	"net/http"

	"repairdesk/internal/app"
)

// createTransaction handles POST /rpc/createTransaction. The authenticated
// caller is recorded as created_by on the transaction.
func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	identity := h.requireIdentity(w, r)
	if identity == nil {
		return
	}
	var req app.CreateTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	transaction, err := h.svc.CreateTransaction(r.Context(), identity.UserID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, transaction)
}

// createTransactionItem handles POST /rpc/createTransactionItem.
func (h *Handler) createTransactionItem(w http.ResponseWriter, r *http.Request) {
	var req app.CreateTransactionItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.svc.CreateTransactionItem(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, item)
}

// getTransactions handles POST /rpc/getTransactions.
func (h *Handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.svc.GetTransactions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, transactions)
}

// getTransactionByID handles POST /rpc/getTransactionById. A missing id yields
// a JSON null body with status 200, not an error. Items are included.
func (h *Handler) getTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeID(w, r)
	if !ok {
		return
	}
	transaction, err := h.svc.GetTransaction(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, transaction)
}
