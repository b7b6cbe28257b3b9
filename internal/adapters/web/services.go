package web

import (
	"net/http"

	"repairdesk/internal/app"
)

// createService handles POST /rpc/createService.
func (h *Handler) createService(w http.ResponseWriter, r *http.Request) {
	var req app.CreateServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	service, err := h.svc.CreateService(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, service)
}

// updateService handles POST /rpc/updateService.
func (h *Handler) updateService(w http.ResponseWriter, r *http.Request) {
	var req app.UpdateServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	service, err := h.svc.UpdateService(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, service)
}

// getServices handles POST /rpc/getServices.
func (h *Handler) getServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.svc.GetServices(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, services)
}

// getServiceByID handles POST /rpc/getServiceById. A missing id yields a JSON
// null body with status 200, not an error.
func (h *Handler) getServiceByID(w http.ResponseWriter, r *http.Request) {
	id, ok := decodeID(w, r)
	if !ok {
		return
	}
	service, err := h.svc.GetService(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, service)
}
