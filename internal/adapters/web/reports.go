package web

import (
	"net/http"

	"repairdesk/internal/app"
)

// getFinancialReport handles POST /rpc/getFinancialReport.
func (h *Handler) getFinancialReport(w http.ResponseWriter, r *http.Request) {
	var req app.FinancialReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	report, err := h.svc.GetFinancialReport(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, report)
}

// getStockReport handles POST /rpc/getStockReport.
func (h *Handler) getStockReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.GetStockReport(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, rows)
}

// getDashboardStats handles POST /rpc/getDashboardStats.
func (h *Handler) getDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetDashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, stats)
}
