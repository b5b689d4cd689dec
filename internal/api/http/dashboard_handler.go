package http

import (
	"net/http"

	"rentdash-backend/internal/provider"
)

type DashboardHandler struct {
	provider provider.DataProvider
}

func NewDashboardHandler(p provider.DataProvider) *DashboardHandler {
	return &DashboardHandler{provider: p}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.provider.GetDashboardStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
