package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdash-backend/internal/domain"
)

func TestDashboardStatsFixtures(t *testing.T) {
	p := New()
	ctx := context.Background()

	stats, err := p.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalProperties)
	assert.Equal(t, 3, stats.OccupiedProperties)
	assert.Equal(t, 1, stats.VacantProperties)
	assert.Equal(t, 3, stats.TotalTenants)
	assert.Equal(t, 3, stats.ActiveTenants)
	assert.Equal(t, 11800.0, stats.TotalMonthlyRevenue)
	assert.Equal(t, 3, stats.PendingPayments)
	assert.Equal(t, 1, stats.OverduePayments)
	assert.Equal(t, 3, stats.OpenMaintenanceRequests)
}

func TestDashboardStatsSingleUnitScenario(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	property, err := p.CreateProperty(ctx, domain.Property{
		Address:      "1 Scenario Way",
		City:         "San Francisco",
		State:        "CA",
		ZipCode:      "94100",
		PropertyType: domain.PropertyTypeApartment,
		Bedrooms:     2,
		Bathrooms:    1,
		SquareFeet:   900,
		MonthlyRent:  3500,
		Status:       domain.PropertyStatusOccupied,
	})
	require.NoError(t, err)

	tenant, err := p.CreateTenant(ctx, domain.Tenant{
		FirstName: "Solo",
		LastName:  "Tenant",
		Status:    domain.TenantStatusActive,
	})
	require.NoError(t, err)

	lease, err := p.CreateLease(ctx, domain.Lease{
		PropertyID:      property.ID,
		TenantID:        tenant.ID,
		StartDate:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRent:     3500,
		SecurityDeposit: 3500,
		Status:          domain.LeaseStatusActive,
	})
	require.NoError(t, err)

	_, err = p.CreatePayment(ctx, domain.Payment{
		LeaseID:  lease.ID,
		TenantID: tenant.ID,
		Amount:   3500,
		DueDate:  time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		Status:   domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	stats, err := p.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalProperties)
	assert.Equal(t, 1, stats.OccupiedProperties)
	assert.Equal(t, 0, stats.VacantProperties)
	assert.Equal(t, 1, stats.TotalTenants)
	assert.Equal(t, 1, stats.ActiveTenants)
	assert.Equal(t, 3500.0, stats.TotalMonthlyRevenue)
	assert.Equal(t, 1, stats.PendingPayments)
	assert.Equal(t, 0, stats.OverduePayments)
	assert.Equal(t, 0, stats.OpenMaintenanceRequests)
}

func TestOccupancyCountsPartitionProperties(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	statuses := []domain.PropertyStatus{
		domain.PropertyStatusOccupied,
		domain.PropertyStatusOccupied,
		domain.PropertyStatusVacant,
		domain.PropertyStatusMaintenance,
		domain.PropertyStatusMaintenance,
	}
	for _, s := range statuses {
		prop := newProperty()
		prop.Status = s
		_, err := p.CreateProperty(ctx, prop)
		require.NoError(t, err)
	}

	stats, err := p.GetDashboardStats(ctx)
	require.NoError(t, err)

	maintenance := stats.TotalProperties - stats.OccupiedProperties - stats.VacantProperties
	assert.Equal(t, 5, stats.TotalProperties)
	assert.Equal(t, 2, stats.OccupiedProperties)
	assert.Equal(t, 1, stats.VacantProperties)
	assert.Equal(t, 2, maintenance)
}

func TestRevenueCountsOnlyActiveLeases(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	for _, l := range []domain.Lease{
		{PropertyID: "p1", TenantID: "t1", MonthlyRent: 1000, Status: domain.LeaseStatusActive},
		{PropertyID: "p2", TenantID: "t2", MonthlyRent: 2000, Status: domain.LeaseStatusActive},
		{PropertyID: "p3", TenantID: "t3", MonthlyRent: 4000, Status: domain.LeaseStatusExpired},
		{PropertyID: "p4", TenantID: "t4", MonthlyRent: 8000, Status: domain.LeaseStatusPending},
		{PropertyID: "p5", TenantID: "t5", MonthlyRent: 16000, Status: domain.LeaseStatusTerminated},
	} {
		_, err := p.CreateLease(ctx, l)
		require.NoError(t, err)
	}

	stats, err := p.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, stats.TotalMonthlyRevenue)
}

func TestLatePaymentsFallInNeitherBucket(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	for _, s := range []domain.PaymentStatus{
		domain.PaymentStatusPending,
		domain.PaymentStatusLate,
		domain.PaymentStatusOverdue,
		domain.PaymentStatusPaid,
	} {
		_, err := p.CreatePayment(ctx, domain.Payment{LeaseID: "l", TenantID: "t", Amount: 100, Status: s})
		require.NoError(t, err)
	}

	stats, err := p.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PendingPayments)
	assert.Equal(t, 1, stats.OverduePayments)
}

func TestOpenMaintenanceIncludesInProgress(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	for _, s := range []domain.MaintenanceStatus{
		domain.MaintenanceStatusOpen,
		domain.MaintenanceStatusInProgress,
		domain.MaintenanceStatusCompleted,
		domain.MaintenanceStatusCancelled,
	} {
		_, err := p.CreateMaintenanceRequest(ctx, domain.MaintenanceRequest{
			PropertyID: "p",
			Title:      "x",
			Status:     s,
			Priority:   domain.MaintenancePriorityLow,
			Category:   domain.MaintenanceCategoryOther,
		})
		require.NoError(t, err)
	}

	stats, err := p.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.OpenMaintenanceRequests)
}

func TestStatsReflectMutations(t *testing.T) {
	p := New()
	ctx := context.Background()

	before, err := p.GetDashboardStats(ctx)
	require.NoError(t, err)

	// Terminating a seeded active lease drops its rent from revenue.
	status := domain.LeaseStatusTerminated
	_, err = p.UpdateLease(ctx, "1", domain.LeasePatch{Status: &status})
	require.NoError(t, err)

	after, err := p.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalMonthlyRevenue-3500, after.TotalMonthlyRevenue)
}
