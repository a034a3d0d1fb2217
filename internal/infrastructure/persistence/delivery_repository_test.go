package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/logistics"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormDeliveryRepository(t *testing.T) {
	db := setupTestDB(t)
	seed := seedLocations(t, db)
	addresses := NewGormAddressRepository(db)
	repo := NewGormDeliveryRepository(db)
	ctx := context.Background()

	used := newTestAddress("Rua A", 1, "01001000", seed.joinville.ID)
	free := newTestAddress("Rua B", 2, "01001000", seed.joinville.ID)
	require.NoError(t, addresses.Create(ctx, used))
	require.NoError(t, addresses.Create(ctx, free))

	sale := seedSale(t, db, 1)
	forecast := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.DeliveryModel{AddressID: used.ID, SaleID: sale.ID, DeliveryForecast: forecast}).Error)

	t.Run("count by address", func(t *testing.T) {
		n, err := repo.CountByAddress(ctx, used.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.CountByAddress(ctx, free.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("filter by sale", func(t *testing.T) {
		filter, err := logistics.DeliveryFilter.Build(map[string]string{"sale_id": "1"})
		require.NoError(t, err)

		got, err := repo.FindAll(ctx, filter)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, used.ID, got[0].AddressID)
		assert.True(t, forecast.Equal(got[0].DeliveryForecast))
	})
}

func TestGormPermissionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPermissionRepository(db)
	ctx := context.Background()

	for _, d := range []string{identity.PermissionRead, identity.PermissionWrite} {
		p, err := identity.NewPermission(d)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p))
		assert.NotZero(t, p.ID)
	}

	all, err := repo.FindAll(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filter, err := identity.PermissionFilter.Build(map[string]string{"description": "wri"})
	require.NoError(t, err)
	got, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, identity.PermissionWrite, got[0].Description)
}
