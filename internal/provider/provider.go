package provider

import (
	"context"

	"rentdash-backend/internal/domain"
)

// DataProvider is the storage-agnostic contract every consumer of the
// data layer programs against. Implementations must keep the same
// success/failure semantics so they are drop-in substitutes for each
// other:
//
//   - Get* on an unknown id returns (nil, nil), never an error
//   - Delete* on an unknown id returns (false, nil), never an error
//   - Update* on an unknown id fails with *domain.NotFoundError
//   - relationship queries with no matches return an empty slice, nil
//   - Create* assigns the id and both timestamps; values supplied by the
//     caller for those fields are ignored
type DataProvider interface {
	// Properties
	GetProperties(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.Property], error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	CreateProperty(ctx context.Context, p domain.Property) (*domain.Property, error)
	UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id string) (bool, error)

	// Tenants
	GetTenants(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.Tenant], error)
	GetTenant(ctx context.Context, id string) (*domain.Tenant, error)
	CreateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, id string) (bool, error)

	// Leases
	GetLeases(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.Lease], error)
	GetLease(ctx context.Context, id string) (*domain.Lease, error)
	GetLeasesByProperty(ctx context.Context, propertyID string) ([]domain.Lease, error)
	GetLeasesByTenant(ctx context.Context, tenantID string) ([]domain.Lease, error)
	CreateLease(ctx context.Context, l domain.Lease) (*domain.Lease, error)
	UpdateLease(ctx context.Context, id string, patch domain.LeasePatch) (*domain.Lease, error)
	DeleteLease(ctx context.Context, id string) (bool, error)

	// Payments
	GetPayments(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.Payment], error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	GetPaymentsByLease(ctx context.Context, leaseID string) ([]domain.Payment, error)
	GetPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
	CreatePayment(ctx context.Context, p domain.Payment) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, id string, patch domain.PaymentPatch) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id string) (bool, error)

	// Maintenance requests
	GetMaintenanceRequests(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.MaintenanceRequest], error)
	GetMaintenanceRequest(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	GetMaintenanceRequestsByProperty(ctx context.Context, propertyID string) ([]domain.MaintenanceRequest, error)
	CreateMaintenanceRequest(ctx context.Context, m domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, id string, patch domain.MaintenanceRequestPatch) (*domain.MaintenanceRequest, error)
	DeleteMaintenanceRequest(ctx context.Context, id string) (bool, error)

	// Dashboard & analytics
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
