package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vitalstack/vitals-engine/internal/engine"
	"github.com/vitalstack/vitals-engine/internal/models"
	"github.com/vitalstack/vitals-engine/internal/services"
)

// Handlers provides the HTTP handlers for the monitoring API.
type Handlers struct {
	logger     *slog.Logger
	service    *services.MonitorService
	trendLimit int
}

// NewHandlers creates the handler set. trendLimit is the default window for
// trends requests that omit a limit.
func NewHandlers(logger *slog.Logger, service *services.MonitorService, trendLimit int) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	if trendLimit <= 0 {
		trendLimit = 10
	}
	return &Handlers{logger: logger, service: service, trendLimit: trendLimit}
}

// HandleMonitor handles POST /api/v1/monitor.
func (h *Handlers) HandleMonitor(w http.ResponseWriter, r *http.Request) {
	var req models.MonitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Vitals) == 0 {
		h.writeError(w, "vitals are required", http.StatusBadRequest)
		return
	}

	report, err := h.service.Monitor(r.Context(), req)
	if err != nil {
		if errors.Is(err, engine.ErrUnsupportedLanguage) || errors.Is(err, engine.ErrInvalidTolerance) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("monitor request failed", slog.Any("error", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

// HandleTrends handles GET /api/v1/trends/{vitalType}.
func (h *Handlers) HandleTrends(w http.ResponseWriter, r *http.Request) {
	vitalType := chi.URLParam(r, "vitalType")

	limit := h.trendLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	window, err := h.service.Trends(r.Context(), vitalType, limit)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownVitalType) {
			h.writeError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("trends request failed", slog.Any("error", err))
		h.writeError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, window)
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
