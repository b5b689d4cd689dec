package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentdash-backend/internal/domain"
	"rentdash-backend/internal/provider"
)

type MaintenanceHandler struct {
	provider provider.DataProvider
}

func NewMaintenanceHandler(p provider.DataProvider) *MaintenanceHandler {
	return &MaintenanceHandler{provider: p}
}

func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.provider.GetMaintenanceRequests(r.Context(), parseQueryOptions(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	request, err := h.provider.GetMaintenanceRequest(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if request == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "maintenance request not found"})
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.MaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	request, err := h.provider.CreateMaintenanceRequest(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch domain.MaintenanceRequestPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	request, err := h.provider.UpdateMaintenanceRequest(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := h.provider.DeleteMaintenanceRequest(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
