// Package memory holds the in-process reference implementation of the
// DataProvider contract. State is volatile and seeded with a fixture
// dataset; it stands in for a future persistent backend.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"rentdash-backend/internal/domain"
)

// Provider keeps one ordered slice per entity kind, all guarded by a
// single lock. The linear-scan update/delete path reads then writes, so
// overlapping mutations on the same id need the mutual exclusion.
type Provider struct {
	mu      sync.RWMutex
	latency time.Duration

	properties  []domain.Property
	tenants     []domain.Tenant
	leases      []domain.Lease
	payments    []domain.Payment
	maintenance []domain.MaintenanceRequest
}

type Option func(*Provider)

// WithLatency makes every operation block for d before touching state,
// simulating a storage round-trip. Zero disables the delay.
func WithLatency(d time.Duration) Option {
	return func(p *Provider) { p.latency = d }
}

// WithoutFixtures starts the provider empty instead of seeded.
func WithoutFixtures() Option {
	return func(p *Provider) {
		p.properties = nil
		p.tenants = nil
		p.leases = nil
		p.payments = nil
		p.maintenance = nil
	}
}

func New(opts ...Option) *Provider {
	p := &Provider{}
	p.seed()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func newID() string {
	return uuid.NewString()
}

// wait models the storage round-trip. It honors cancellation even with
// latency disabled so callers get the usual context semantics.
func (p *Provider) wait(ctx context.Context) error {
	if p.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func filterItems[T any](items []T, match func(T) bool) []T {
	out := []T{}
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Property operations

func (p *Provider) GetProperties(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.Property], error) {
	if err := p.wait(ctx); err != nil {
		return domain.PaginatedResult[domain.Property]{}, err
	}
	opts = opts.Normalized()

	p.mu.RLock()
	items := make([]domain.Property, len(p.properties))
	copy(items, p.properties)
	p.mu.RUnlock()

	items = applyPropertyFilters(items, opts.Filters)
	sortProperties(items, opts.SortBy, opts.SortOrder)
	return domain.NewPaginatedResult(items, opts), nil
}

func (p *Provider) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	i := indexByID(p.properties, id, func(pr domain.Property) string { return pr.ID })
	if i < 0 {
		return nil, nil
	}
	out := p.properties[i]
	return &out, nil
}

func (p *Provider) CreateProperty(ctx context.Context, in domain.Property) (*domain.Property, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	in.ID = newID()
	in.CreatedAt = now
	in.UpdatedAt = now
	p.properties = append(p.properties, in)
	return &in, nil
}

func (p *Provider) UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.properties, id, func(pr domain.Property) string { return pr.ID })
	if i < 0 {
		return nil, &domain.NotFoundError{Kind: "property", ID: id}
	}
	patch.Apply(&p.properties[i])
	p.properties[i].UpdatedAt = time.Now()
	out := p.properties[i]
	return &out, nil
}

func (p *Provider) DeleteProperty(ctx context.Context, id string) (bool, error) {
	if err := p.wait(ctx); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.properties, id, func(pr domain.Property) string { return pr.ID })
	if i < 0 {
		return false, nil
	}
	// No cascade: leases and payments pointing at this property keep
	// their now-dangling ids.
	p.properties = append(p.properties[:i], p.properties[i+1:]...)
	return true, nil
}

// Tenant operations

func (p *Provider) GetTenants(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.Tenant], error) {
	if err := p.wait(ctx); err != nil {
		return domain.PaginatedResult[domain.Tenant]{}, err
	}
	opts = opts.Normalized()

	p.mu.RLock()
	items := make([]domain.Tenant, len(p.tenants))
	copy(items, p.tenants)
	p.mu.RUnlock()

	items = applyTenantFilters(items, opts.Filters)
	sortTenants(items, opts.SortBy, opts.SortOrder)
	return domain.NewPaginatedResult(items, opts), nil
}

func (p *Provider) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	i := indexByID(p.tenants, id, func(t domain.Tenant) string { return t.ID })
	if i < 0 {
		return nil, nil
	}
	out := p.tenants[i]
	return &out, nil
}

func (p *Provider) CreateTenant(ctx context.Context, in domain.Tenant) (*domain.Tenant, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	in.ID = newID()
	in.CreatedAt = now
	in.UpdatedAt = now
	p.tenants = append(p.tenants, in)
	return &in, nil
}

func (p *Provider) UpdateTenant(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.tenants, id, func(t domain.Tenant) string { return t.ID })
	if i < 0 {
		return nil, &domain.NotFoundError{Kind: "tenant", ID: id}
	}
	patch.Apply(&p.tenants[i])
	p.tenants[i].UpdatedAt = time.Now()
	out := p.tenants[i]
	return &out, nil
}

func (p *Provider) DeleteTenant(ctx context.Context, id string) (bool, error) {
	if err := p.wait(ctx); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.tenants, id, func(t domain.Tenant) string { return t.ID })
	if i < 0 {
		return false, nil
	}
	p.tenants = append(p.tenants[:i], p.tenants[i+1:]...)
	return true, nil
}

// Lease operations

func (p *Provider) GetLeases(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.Lease], error) {
	if err := p.wait(ctx); err != nil {
		return domain.PaginatedResult[domain.Lease]{}, err
	}
	opts = opts.Normalized()

	p.mu.RLock()
	items := make([]domain.Lease, len(p.leases))
	copy(items, p.leases)
	p.mu.RUnlock()

	items = applyLeaseFilters(items, opts.Filters)
	sortLeases(items, opts.SortBy, opts.SortOrder)
	return domain.NewPaginatedResult(items, opts), nil
}

func (p *Provider) GetLease(ctx context.Context, id string) (*domain.Lease, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	i := indexByID(p.leases, id, func(l domain.Lease) string { return l.ID })
	if i < 0 {
		return nil, nil
	}
	out := p.leases[i]
	return &out, nil
}

func (p *Provider) GetLeasesByProperty(ctx context.Context, propertyID string) ([]domain.Lease, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return filterItems(p.leases, func(l domain.Lease) bool { return l.PropertyID == propertyID }), nil
}

func (p *Provider) GetLeasesByTenant(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return filterItems(p.leases, func(l domain.Lease) bool { return l.TenantID == tenantID }), nil
}

func (p *Provider) CreateLease(ctx context.Context, in domain.Lease) (*domain.Lease, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	in.ID = newID()
	in.CreatedAt = now
	in.UpdatedAt = now
	p.leases = append(p.leases, in)
	return &in, nil
}

func (p *Provider) UpdateLease(ctx context.Context, id string, patch domain.LeasePatch) (*domain.Lease, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.leases, id, func(l domain.Lease) string { return l.ID })
	if i < 0 {
		return nil, &domain.NotFoundError{Kind: "lease", ID: id}
	}
	patch.Apply(&p.leases[i])
	p.leases[i].UpdatedAt = time.Now()
	out := p.leases[i]
	return &out, nil
}

func (p *Provider) DeleteLease(ctx context.Context, id string) (bool, error) {
	if err := p.wait(ctx); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.leases, id, func(l domain.Lease) string { return l.ID })
	if i < 0 {
		return false, nil
	}
	p.leases = append(p.leases[:i], p.leases[i+1:]...)
	return true, nil
}

// Payment operations

func (p *Provider) GetPayments(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.Payment], error) {
	if err := p.wait(ctx); err != nil {
		return domain.PaginatedResult[domain.Payment]{}, err
	}
	opts = opts.Normalized()

	p.mu.RLock()
	items := make([]domain.Payment, len(p.payments))
	copy(items, p.payments)
	p.mu.RUnlock()

	items = applyPaymentFilters(items, opts.Filters)
	sortPayments(items, opts.SortBy, opts.SortOrder)
	return domain.NewPaginatedResult(items, opts), nil
}

func (p *Provider) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	i := indexByID(p.payments, id, func(pm domain.Payment) string { return pm.ID })
	if i < 0 {
		return nil, nil
	}
	out := p.payments[i]
	return &out, nil
}

func (p *Provider) GetPaymentsByLease(ctx context.Context, leaseID string) ([]domain.Payment, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return filterItems(p.payments, func(pm domain.Payment) bool { return pm.LeaseID == leaseID }), nil
}

func (p *Provider) GetPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return filterItems(p.payments, func(pm domain.Payment) bool { return pm.TenantID == tenantID }), nil
}

func (p *Provider) CreatePayment(ctx context.Context, in domain.Payment) (*domain.Payment, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	in.ID = newID()
	in.CreatedAt = now
	in.UpdatedAt = now
	p.payments = append(p.payments, in)
	return &in, nil
}

func (p *Provider) UpdatePayment(ctx context.Context, id string, patch domain.PaymentPatch) (*domain.Payment, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.payments, id, func(pm domain.Payment) string { return pm.ID })
	if i < 0 {
		return nil, &domain.NotFoundError{Kind: "payment", ID: id}
	}
	patch.Apply(&p.payments[i])
	p.payments[i].UpdatedAt = time.Now()
	out := p.payments[i]
	return &out, nil
}

func (p *Provider) DeletePayment(ctx context.Context, id string) (bool, error) {
	if err := p.wait(ctx); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.payments, id, func(pm domain.Payment) string { return pm.ID })
	if i < 0 {
		return false, nil
	}
	p.payments = append(p.payments[:i], p.payments[i+1:]...)
	return true, nil
}

// Maintenance request operations

func (p *Provider) GetMaintenanceRequests(ctx context.Context, opts domain.QueryOptions) (domain.PaginatedResult[domain.MaintenanceRequest], error) {
	if err := p.wait(ctx); err != nil {
		return domain.PaginatedResult[domain.MaintenanceRequest]{}, err
	}
	opts = opts.Normalized()

	p.mu.RLock()
	items := make([]domain.MaintenanceRequest, len(p.maintenance))
	copy(items, p.maintenance)
	p.mu.RUnlock()

	items = applyMaintenanceFilters(items, opts.Filters)
	sortMaintenanceRequests(items, opts.SortBy, opts.SortOrder)
	return domain.NewPaginatedResult(items, opts), nil
}

func (p *Provider) GetMaintenanceRequest(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	i := indexByID(p.maintenance, id, func(m domain.MaintenanceRequest) string { return m.ID })
	if i < 0 {
		return nil, nil
	}
	out := p.maintenance[i]
	return &out, nil
}

func (p *Provider) GetMaintenanceRequestsByProperty(ctx context.Context, propertyID string) ([]domain.MaintenanceRequest, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return filterItems(p.maintenance, func(m domain.MaintenanceRequest) bool { return m.PropertyID == propertyID }), nil
}

func (p *Provider) CreateMaintenanceRequest(ctx context.Context, in domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	in.ID = newID()
	in.CreatedAt = now
	in.UpdatedAt = now
	p.maintenance = append(p.maintenance, in)
	return &in, nil
}

func (p *Provider) UpdateMaintenanceRequest(ctx context.Context, id string, patch domain.MaintenanceRequestPatch) (*domain.MaintenanceRequest, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.maintenance, id, func(m domain.MaintenanceRequest) string { return m.ID })
	if i < 0 {
		return nil, &domain.NotFoundError{Kind: "maintenance request", ID: id}
	}
	patch.Apply(&p.maintenance[i])
	p.maintenance[i].UpdatedAt = time.Now()
	out := p.maintenance[i]
	return &out, nil
}

func (p *Provider) DeleteMaintenanceRequest(ctx context.Context, id string) (bool, error) {
	if err := p.wait(ctx); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := indexByID(p.maintenance, id, func(m domain.MaintenanceRequest) string { return m.ID })
	if i < 0 {
		return false, nil
	}
	p.maintenance = append(p.maintenance[:i], p.maintenance[i+1:]...)
	return true, nil
}

// GetDashboardStats computes the aggregate counters over current state.
// Pure read, no side effects.
func (p *Provider) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := &domain.DashboardStats{
		TotalProperties: len(p.properties),
		TotalTenants:    len(p.tenants),
	}

	for _, pr := range p.properties {
		switch pr.Status {
		case domain.PropertyStatusOccupied:
			stats.OccupiedProperties++
		case domain.PropertyStatusVacant:
			stats.VacantProperties++
		}
	}

	for _, t := range p.tenants {
		if t.Status == domain.TenantStatusActive {
			stats.ActiveTenants++
		}
	}

	// Revenue reflects active lease agreements, not property occupancy.
	for _, l := range p.leases {
		if l.Status == domain.LeaseStatusActive {
			stats.TotalMonthlyRevenue += l.MonthlyRent
		}
	}

	for _, pm := range p.payments {
		switch pm.Status {
		case domain.PaymentStatusPending:
			stats.PendingPayments++
		case domain.PaymentStatusOverdue:
			stats.OverduePayments++
		}
	}

	for _, m := range p.maintenance {
		if m.Status == domain.MaintenanceStatusOpen || m.Status == domain.MaintenanceStatusInProgress {
			stats.OpenMaintenanceRequests++
		}
	}

	return stats, nil
}
