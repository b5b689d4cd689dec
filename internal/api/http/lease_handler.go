package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentdash-backend/internal/domain"
	"rentdash-backend/internal/provider"
)

type LeaseHandler struct {
	provider provider.DataProvider
}

func NewLeaseHandler(p provider.DataProvider) *LeaseHandler {
	return &LeaseHandler{provider: p}
}

func (h *LeaseHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.provider.GetLeases(r.Context(), parseQueryOptions(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *LeaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	lease, err := h.provider.GetLease(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if lease == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "lease not found"})
		return
	}
	writeJSON(w, http.StatusOK, lease)
}

func (h *LeaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.Lease
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	lease, err := h.provider.CreateLease(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, lease)
}

func (h *LeaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch domain.LeasePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	lease, err := h.provider.UpdateLease(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lease)
}

func (h *LeaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := h.provider.DeleteLease(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *LeaseHandler) Payments(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	payments, err := h.provider.GetPaymentsByLease(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
