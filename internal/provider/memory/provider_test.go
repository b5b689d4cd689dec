package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdash-backend/internal/domain"
)

func newProperty() domain.Property {
	return domain.Property{
		Address:      "12 Test Lane",
		City:         "San Jose",
		State:        "CA",
		ZipCode:      "95112",
		PropertyType: domain.PropertyTypeHouse,
		Bedrooms:     4,
		Bathrooms:    3,
		SquareFeet:   2100,
		MonthlyRent:  5200,
		Status:       domain.PropertyStatusVacant,
	}
}

func TestCreateReadRoundTrip(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	created, err := p.CreateProperty(ctx, newProperty())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := p.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestCreateIgnoresCallerID(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	input := newProperty()
	input.ID = "caller-chosen"
	input.CreatedAt = time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)

	created, err := p.CreateProperty(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, "caller-chosen", created.ID)
	assert.NotEqual(t, 1999, created.CreatedAt.Year())
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		created, err := p.CreateTenant(ctx, domain.Tenant{FirstName: "T", Status: domain.TenantStatusActive})
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestGetUnknownIDReturnsNil(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	got, err := p.GetProperty(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateMergeSemantics(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	created, err := p.CreateProperty(ctx, newProperty())
	require.NoError(t, err)

	rent := 5500.0
	updated, err := p.UpdateProperty(ctx, created.ID, domain.PropertyPatch{MonthlyRent: &rent})
	require.NoError(t, err)

	assert.Equal(t, 5500.0, updated.MonthlyRent)
	assert.GreaterOrEqual(t, updated.UpdatedAt.UnixNano(), created.UpdatedAt.UnixNano())

	// Everything except the patched field and UpdatedAt is untouched.
	expected := *created
	expected.MonthlyRent = rent
	expected.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, expected, *updated)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateReplacesEmergencyContactWholesale(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	created, err := p.CreateTenant(ctx, domain.Tenant{
		FirstName: "Ann",
		LastName:  "Lee",
		EmergencyContact: domain.EmergencyContact{
			Name:         "Ben Lee",
			Phone:        "555-1111",
			Relationship: "Brother",
		},
		Status: domain.TenantStatusActive,
	})
	require.NoError(t, err)

	updated, err := p.UpdateTenant(ctx, created.ID, domain.TenantPatch{
		EmergencyContact: &domain.EmergencyContact{Name: "Cara Lee"},
	})
	require.NoError(t, err)

	// The whole embedded record is swapped, not merged field by field.
	assert.Equal(t, "Cara Lee", updated.EmergencyContact.Name)
	assert.Empty(t, updated.EmergencyContact.Phone)
	assert.Empty(t, updated.EmergencyContact.Relationship)
}

func TestUpdateUnknownIDFailsNotFound(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	addr := "1 Nowhere"
	_, err := p.UpdateProperty(ctx, "missing", domain.PropertyPatch{Address: &addr})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "missing")
}

func TestDeleteIdempotence(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	created, err := p.CreateTenant(ctx, domain.Tenant{FirstName: "Gone", Status: domain.TenantStatusActive})
	require.NoError(t, err)

	deleted, err := p.DeleteTenant(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = p.DeleteTenant(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCreateThenDeleteTenantIsGone(t *testing.T) {
	p := New(WithoutFixtures())
	ctx := context.Background()

	created, err := p.CreateTenant(ctx, domain.Tenant{FirstName: "Brief", Status: domain.TenantStatusPending})
	require.NoError(t, err)

	deleted, err := p.DeleteTenant(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := p.GetTenant(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := p.GetTenants(ctx, domain.QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, all.Total)
}

func TestDeletePropertyLeavesDanglingLeases(t *testing.T) {
	p := New()
	ctx := context.Background()

	// Seeded lease "1" references property "1".
	deleted, err := p.DeleteProperty(ctx, "1")
	require.NoError(t, err)
	require.True(t, deleted)

	lease, err := p.GetLease(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, lease)
	assert.Equal(t, "1", lease.PropertyID)

	// The dangling id simply resolves to nothing.
	property, err := p.GetProperty(ctx, lease.PropertyID)
	require.NoError(t, err)
	assert.Nil(t, property)
}

func TestRelationshipQueries(t *testing.T) {
	p := New()
	ctx := context.Background()

	t.Run("Leases by property", func(t *testing.T) {
		leases, err := p.GetLeasesByProperty(ctx, "1")
		require.NoError(t, err)
		require.Len(t, leases, 1)
		assert.Equal(t, "1", leases[0].TenantID)
	})

	t.Run("Leases by tenant", func(t *testing.T) {
		leases, err := p.GetLeasesByTenant(ctx, "3")
		require.NoError(t, err)
		require.Len(t, leases, 1)
		assert.Equal(t, "4", leases[0].PropertyID)
	})

	t.Run("Payments by lease", func(t *testing.T) {
		payments, err := p.GetPaymentsByLease(ctx, "3")
		require.NoError(t, err)
		assert.Len(t, payments, 2)
	})

	t.Run("Payments by tenant", func(t *testing.T) {
		payments, err := p.GetPaymentsByTenant(ctx, "1")
		require.NoError(t, err)
		assert.Len(t, payments, 2)
	})

	t.Run("Maintenance by property", func(t *testing.T) {
		requests, err := p.GetMaintenanceRequestsByProperty(ctx, "2")
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, "HVAC not heating properly", requests[0].Title)
	})

	t.Run("No matches yields empty slice, not error", func(t *testing.T) {
		leases, err := p.GetLeasesByProperty(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.NotNil(t, leases)
		assert.Empty(t, leases)
	})
}

func TestFixtureDataset(t *testing.T) {
	p := New()
	ctx := context.Background()

	properties, err := p.GetProperties(ctx, domain.QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, properties.Total)

	tenants, err := p.GetTenants(ctx, domain.QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, tenants.Total)

	leases, err := p.GetLeases(ctx, domain.QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, leases.Total)

	payments, err := p.GetPayments(ctx, domain.QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 6, payments.Total)

	requests, err := p.GetMaintenanceRequests(ctx, domain.QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, requests.Total)

	// Every seeded lease and payment resolves.
	for _, l := range leases.Data {
		property, err := p.GetProperty(ctx, l.PropertyID)
		require.NoError(t, err)
		assert.NotNil(t, property, "lease %s property", l.ID)
		tenant, err := p.GetTenant(ctx, l.TenantID)
		require.NoError(t, err)
		assert.NotNil(t, tenant, "lease %s tenant", l.ID)
	}
	for _, pm := range payments.Data {
		lease, err := p.GetLease(ctx, pm.LeaseID)
		require.NoError(t, err)
		assert.NotNil(t, lease, "payment %s lease", pm.ID)
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	p := New()
	ctx := context.Background()

	got, err := p.GetProperty(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)

	got.Address = "mutated by caller"

	again, err := p.GetProperty(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "123 Oak Street", again.Address)
}

func TestCancelledContext(t *testing.T) {
	p := New(WithLatency(50 * time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetProperties(ctx, domain.QueryOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedLatency(t *testing.T) {
	p := New(WithLatency(30 * time.Millisecond))
	ctx := context.Background()

	start := time.Now()
	_, err := p.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
