package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentdash-backend/internal/domain"
	"rentdash-backend/internal/provider"
)

type PaymentHandler struct {
	provider provider.DataProvider
}

func NewPaymentHandler(p provider.DataProvider) *PaymentHandler {
	return &PaymentHandler{provider: p}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.provider.GetPayments(r.Context(), parseQueryOptions(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	payment, err := h.provider.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if payment == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "payment not found"})
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	payment, err := h.provider.CreatePayment(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch domain.PaymentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	payment, err := h.provider.UpdatePayment(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := h.provider.DeletePayment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
