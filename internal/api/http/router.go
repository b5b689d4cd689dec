package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentdash-backend/internal/obs"
	"rentdash-backend/internal/provider"
)

// NewRouter wires every handler against the shared provider instance.
func NewRouter(p provider.DataProvider) *mux.Router {
	router := mux.NewRouter()
	router.Use(obs.Instrument)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	router.Handle("/metrics", obs.Handler()).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	properties := NewPropertyHandler(p)
	api.HandleFunc("/properties", properties.List).Methods("GET")
	api.HandleFunc("/properties", properties.Create).Methods("POST")
	api.HandleFunc("/properties/{id}", properties.Get).Methods("GET")
	api.HandleFunc("/properties/{id}", properties.Update).Methods("PUT")
	api.HandleFunc("/properties/{id}", properties.Delete).Methods("DELETE")
	api.HandleFunc("/properties/{id}/leases", properties.Leases).Methods("GET")
	api.HandleFunc("/properties/{id}/maintenance-requests", properties.MaintenanceRequests).Methods("GET")

	tenants := NewTenantHandler(p)
	api.HandleFunc("/tenants", tenants.List).Methods("GET")
	api.HandleFunc("/tenants", tenants.Create).Methods("POST")
	api.HandleFunc("/tenants/{id}", tenants.Get).Methods("GET")
	api.HandleFunc("/tenants/{id}", tenants.Update).Methods("PUT")
	api.HandleFunc("/tenants/{id}", tenants.Delete).Methods("DELETE")
	api.HandleFunc("/tenants/{id}/leases", tenants.Leases).Methods("GET")
	api.HandleFunc("/tenants/{id}/payments", tenants.Payments).Methods("GET")

	leases := NewLeaseHandler(p)
	api.HandleFunc("/leases", leases.List).Methods("GET")
	api.HandleFunc("/leases", leases.Create).Methods("POST")
	api.HandleFunc("/leases/{id}", leases.Get).Methods("GET")
	api.HandleFunc("/leases/{id}", leases.Update).Methods("PUT")
	api.HandleFunc("/leases/{id}", leases.Delete).Methods("DELETE")
	api.HandleFunc("/leases/{id}/payments", leases.Payments).Methods("GET")

	payments := NewPaymentHandler(p)
	api.HandleFunc("/payments", payments.List).Methods("GET")
	api.HandleFunc("/payments", payments.Create).Methods("POST")
	api.HandleFunc("/payments/{id}", payments.Get).Methods("GET")
	api.HandleFunc("/payments/{id}", payments.Update).Methods("PUT")
	api.HandleFunc("/payments/{id}", payments.Delete).Methods("DELETE")

	maintenance := NewMaintenanceHandler(p)
	api.HandleFunc("/maintenance-requests", maintenance.List).Methods("GET")
	api.HandleFunc("/maintenance-requests", maintenance.Create).Methods("POST")
	api.HandleFunc("/maintenance-requests/{id}", maintenance.Get).Methods("GET")
	api.HandleFunc("/maintenance-requests/{id}", maintenance.Update).Methods("PUT")
	api.HandleFunc("/maintenance-requests/{id}", maintenance.Delete).Methods("DELETE")

	dashboard := NewDashboardHandler(p)
	api.HandleFunc("/dashboard/stats", dashboard.Stats).Methods("GET")

	return router
}
