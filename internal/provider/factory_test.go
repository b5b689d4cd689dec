package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdash-backend/internal/domain"
)

func TestFactoryReturnsSharedInstance(t *testing.T) {
	f := NewFactory(TypeMemory, 0)
	ctx := context.Background()

	first, err := f.Provider()
	require.NoError(t, err)
	second, err := f.Provider()
	require.NoError(t, err)

	// A mutation through one handle is visible through the other.
	created, err := first.CreateTenant(ctx, domain.Tenant{FirstName: "Shared", Status: domain.TenantStatusActive})
	require.NoError(t, err)

	got, err := second.GetTenant(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Shared", got.FirstName)
}

func TestFactoryResetDiscardsState(t *testing.T) {
	f := NewFactory(TypeMemory, 0)
	ctx := context.Background()

	p, err := f.Provider()
	require.NoError(t, err)
	_, err = p.CreateTenant(ctx, domain.Tenant{FirstName: "Ephemeral", Status: domain.TenantStatusActive})
	require.NoError(t, err)

	f.Reset()

	fresh, err := f.Provider()
	require.NoError(t, err)
	assert.NotSame(t, p, fresh)

	tenants, err := fresh.GetTenants(ctx, domain.QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, tenants.Total) // back to the fixture dataset
}

func TestFactorySetType(t *testing.T) {
	t.Run("Unknown type fails fast", func(t *testing.T) {
		f := NewFactory(TypeMemory, 0)
		err := f.SetType("cassandra")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider type")

		// The factory still serves the previous configuration.
		_, err = f.Provider()
		assert.NoError(t, err)
	})

	t.Run("Switching discards the cached instance", func(t *testing.T) {
		f := NewFactory(TypeMemory, 0)
		p, err := f.Provider()
		require.NoError(t, err)

		require.NoError(t, f.SetType(TypeMemory))
		fresh, err := f.Provider()
		require.NoError(t, err)
		assert.NotSame(t, p, fresh)
	})

	t.Run("API type serves the memory fallback", func(t *testing.T) {
		f := NewFactory(TypeMemory, 0)
		require.NoError(t, f.SetType(TypeAPI))
		p, err := f.Provider()
		require.NoError(t, err)
		assert.NotNil(t, p)
	})
}

func TestFactoryDefaultsToMemory(t *testing.T) {
	f := NewFactory("", 0)
	p, err := f.Provider()
	require.NoError(t, err)

	tenants, err := p.GetTenants(context.Background(), domain.QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, tenants.Total)
}
