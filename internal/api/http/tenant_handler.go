package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentdash-backend/internal/domain"
	"rentdash-backend/internal/provider"
)

type TenantHandler struct {
	provider provider.DataProvider
}

func NewTenantHandler(p provider.DataProvider) *TenantHandler {
	return &TenantHandler{provider: p}
}

func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.provider.GetTenants(r.Context(), parseQueryOptions(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tenant, err := h.provider.GetTenant(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if tenant == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "tenant not found"})
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.Tenant
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	tenant, err := h.provider.CreateTenant(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}

func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch domain.TenantPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	tenant, err := h.provider.UpdateTenant(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := h.provider.DeleteTenant(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (h *TenantHandler) Leases(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	leases, err := h.provider.GetLeasesByTenant(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, leases)
}

func (h *TenantHandler) Payments(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	payments, err := h.provider.GetPaymentsByTenant(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
