package order_test

import (
	"testing"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRef(t *testing.T) {
	t.Run("should create individual customer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := order.NewIndividualCustomer(id)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, order.CustomerKindIndividual, c.Kind())
		assert.True(t, c.ID().IsEqual(id))
	})

	t.Run("should create company customer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := order.NewCompanyCustomer(id)

		require.NoError(t, err)
		assert.Equal(t, order.CustomerKindCompany, c.Kind())
		assert.True(t, c.ID().IsEqual(id))
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewIndividualCustomer(invalidID)
		require.Error(t, err)

		_, err = order.NewCompanyCustomer(invalidID)
		require.Error(t, err)
	})

	t.Run("should reject directly instantiated customer", func(t *testing.T) {
		var c order.CustomerRef

		require.Error(t, c.Validate())
		assert.ErrorIs(t, c.Validate(), order.ErrCustomerRefIsNotConstructed)
	})

	t.Run("should match only its own id for ownership", func(t *testing.T) {
		id := kernel.NewUUID()
		c, err := order.NewCompanyCustomer(id)
		require.NoError(t, err)

		assert.True(t, c.IsOwnedBy(id))
		assert.False(t, c.IsOwnedBy(kernel.NewUUID()))
	})
}

func TestServiceType(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		for wireName, expected := range map[string]order.ServiceType{
			"INSTALLATION": order.ServiceTypeInstallation,
			"FIX_ON_SITE":  order.ServiceTypeFixOnSite,
			"FIX_OFF_SITE": order.ServiceTypeFixOffSite,
		} {
			parsed, err := order.ServiceTypeFromString(wireName)

			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
			assert.Equal(t, wireName, parsed.String())
		}
	})

	t.Run("should reject unknown service type", func(t *testing.T) {
		require.Error(t, order.ServiceTypeUnknown.Validate())

		_, err := order.ServiceTypeFromString("TELEPORTATION")
		require.Error(t, err)
	})

	t.Run("should have Georgian labels", func(t *testing.T) {
		assert.NotEmpty(t, order.ServiceTypeInstallation.Label())
		assert.NotEmpty(t, order.ServiceTypeFixOnSite.Label())
		assert.NotEmpty(t, order.ServiceTypeFixOffSite.Label())
	})
}
