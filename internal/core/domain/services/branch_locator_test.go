package services_test

import (
	"testing"

	"remont/internal/core/domain/model/catalog"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchLocator_Locate(t *testing.T) {
	locator := services.NewBranchLocator()

	tbilisiCenter, err := kernel.NewGeoPoint(41.7151, 44.8271)
	require.NoError(t, err)
	tbilisiOutskirts, err := kernel.NewGeoPoint(41.80, 44.85)
	require.NoError(t, err)
	batumi, err := kernel.NewGeoPoint(41.6168, 41.6367)
	require.NoError(t, err)

	central, err := catalog.NewBranch(kernel.NewUUID(), "Central", tbilisiCenter, 30)
	require.NoError(t, err)
	northern, err := catalog.NewBranch(kernel.NewUUID(), "Northern", tbilisiOutskirts, 30)
	require.NoError(t, err)

	t.Run("should pick the nearest covering branch", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(41.72, 44.83)
		require.NoError(t, err)

		branch, err := locator.Locate(point, []*catalog.Branch{northern, central})

		require.NoError(t, err)
		assert.True(t, branch.ID().IsEqual(central.ID()))
	})

	t.Run("should fail when no branch covers the point", func(t *testing.T) {
		_, err := locator.Locate(batumi, []*catalog.Branch{central, northern})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrBranchNotFound)
	})

	t.Run("should fail with no branches at all", func(t *testing.T) {
		_, err := locator.Locate(tbilisiCenter, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrBranchNotFound)
	})

	t.Run("should fail with unconstructed point", func(t *testing.T) {
		var invalidPoint kernel.GeoPoint

		_, err := locator.Locate(invalidPoint, []*catalog.Branch{central})

		require.Error(t, err)
	})
}

func TestBranchLocator_IsServiceable(t *testing.T) {
	locator := services.NewBranchLocator()

	tbilisiCenter, err := kernel.NewGeoPoint(41.7151, 44.8271)
	require.NoError(t, err)
	batumi, err := kernel.NewGeoPoint(41.6168, 41.6367)
	require.NoError(t, err)

	central, err := catalog.NewBranch(kernel.NewUUID(), "Central", tbilisiCenter, 30)
	require.NoError(t, err)

	assert.True(t, locator.IsServiceable(tbilisiCenter, []*catalog.Branch{central}))
	assert.False(t, locator.IsServiceable(batumi, []*catalog.Branch{central}))
}
