package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentdash-backend/internal/domain"
	"rentdash-backend/internal/provider"
)

// PropertyHandler exposes property CRUD over JSON
type PropertyHandler struct {
	provider provider.DataProvider
}

func NewPropertyHandler(p provider.DataProvider) *PropertyHandler {
	return &PropertyHandler{provider: p}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.provider.GetProperties(r.Context(), parseQueryOptions(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	property, err := h.provider.GetProperty(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if property == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "property not found"})
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.Property
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	property, err := h.provider.CreateProperty(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch domain.PropertyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	property, err := h.provider.UpdateProperty(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := h.provider.DeleteProperty(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *PropertyHandler) Leases(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	leases, err := h.provider.GetLeasesByProperty(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, leases)
}

func (h *PropertyHandler) MaintenanceRequests(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	requests, err := h.provider.GetMaintenanceRequestsByProperty(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
