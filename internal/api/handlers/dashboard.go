package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// KPIs returns the four summary facts for one domain.
// GET /v1/domains/{domain}/kpis
func (h *DashboardHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	d := chi.URLParam(r, "domain")
	if !domain.ValidDomain(d) {
		writeError(w, http.StatusBadRequest, "unknown domain")
		return
	}
	set := h.svc.KPIs(r.Context(), domain.Domain(d))
	writeJSON(w, http.StatusOK, map[string]any{
		"domain": d,
		"kpis":   set,
	})
}

// NetWorth returns the unified financial aggregate.
// GET /v1/networth
func (h *DashboardHandler) NetWorth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.NetWorth(r.Context()))
}
