package web

import (
	"net/http"

	"repairdesk/internal/app"
)

// createUser handles POST /rpc/createUser. Duplicate username or email comes
// back as 409 CONFLICT with the raw constraint message.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req app.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.svc.CreateUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, user)
}

// getUsers handles POST /rpc/getUsers.
func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.GetUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, users)
}

// getTechnicians handles POST /rpc/getTechnicians.
func (h *Handler) getTechnicians(w http.ResponseWriter, r *http.Request) {
	technicians, err := h.svc.GetTechnicians(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, technicians)
}
