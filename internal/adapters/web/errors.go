package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"repairdesk/internal/core"
	"repairdesk/internal/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// insufficientStockResponse carries the stock numbers the client needs to
// adjust the requested quantity without another round trip.
type insufficientStockResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	ProductID int    `json:"product_id"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps a domain error onto the wire taxonomy:
// missing entity → 404 NOT_FOUND, stock floor → 409 INSUFFICIENT_STOCK,
// rejected input → 400 VALIDATION, duplicate key → 409 CONFLICT with the raw
// constraint message, anything else → 500 INTERNAL.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *core.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, r, nf.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}

	var is *core.InsufficientStockError
	if errors.As(err, &is) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(insufficientStockResponse{
			Error:     is.Error(),
			Code:      "INSUFFICIENT_STOCK",
			ProductID: is.ProductID,
			Available: is.Available,
			Requested: is.Requested,
			RequestID: requestIDFromContext(r.Context()),
		})
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		writeError(w, r, err.Error(), "VALIDATION", http.StatusBadRequest)
		return
	}

	if core.IsUniqueViolation(err) {
		writeError(w, r, err.Error(), "CONFLICT", http.StatusConflict)
		return
	}

	logger.Get().Error("request failed",
		zap.String("request_id", requestIDFromContext(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
}
