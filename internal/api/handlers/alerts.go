package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/service"
)

type AlertsHandler struct {
	svc *service.DashboardService
}

func NewAlertsHandler(svc *service.DashboardService) *AlertsHandler {
	return &AlertsHandler{svc: svc}
}

// List returns the sorted, dismissal-filtered, capped feed.
// GET /v1/alerts
func (h *AlertsHandler) List(w http.ResponseWriter, r *http.Request) {
	feed := h.svc.Alerts(r.Context())
	if feed == nil {
		feed = []domain.Alert{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": feed})
}

// Dismiss acknowledges one alert so it stops reappearing.
// POST /v1/alerts/{id}/dismiss
func (h *AlertsHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "alert id required")
		return
	}
	if err := h.svc.Dismiss(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist dismissal")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
}

// Clear empties the dismissal set; still-triggering alerts reappear.
// DELETE /v1/alerts/dismissed
func (h *AlertsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearDismissals(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear dismissals")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
