package domain

// DashboardStats aggregates the landlord's at-a-glance counters.
//
// TotalMonthlyRevenue sums MonthlyRent over leases with status "active"
// only; property occupancy does not factor in. PendingPayments and
// OverduePayments count exactly those two payment statuses — payments
// marked "late" fall in neither bucket, matching the behavior this layer
// replaces.
type DashboardStats struct {
	TotalProperties         int     `json:"total_properties"`
	OccupiedProperties      int     `json:"occupied_properties"`
	VacantProperties        int     `json:"vacant_properties"`
	TotalTenants            int     `json:"total_tenants"`
	ActiveTenants           int     `json:"active_tenants"`
	TotalMonthlyRevenue     float64 `json:"total_monthly_revenue"`
	PendingPayments         int     `json:"pending_payments"`
	OverduePayments         int     `json:"overdue_payments"`
	OpenMaintenanceRequests int     `json:"open_maintenance_requests"`
}
