package queries_test

import (
	"testing"

	"remont/internal/core/application/usecases/queries"
	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		caller, err := actor.NewActor(actor.RoleCustomer, kernel.NewUUID())
		require.NoError(t, err)

		q, err := queries.NewGetOrderQuery(kernel.NewUUID(), caller)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		caller, err := actor.NewActor(actor.RoleAdmin, kernel.NewUUID())
		require.NoError(t, err)
		var invalidID kernel.UUID

		_, err = queries.NewGetOrderQuery(invalidID, caller)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed caller", func(t *testing.T) {
		var caller actor.Actor

		_, err := queries.NewGetOrderQuery(kernel.NewUUID(), caller)

		require.Error(t, err)
	})

	t.Run("should reject directly instantiated query", func(t *testing.T) {
		var q queries.GetOrderQuery

		require.Error(t, q.Validate())
	})
}

func TestNewGetActiveOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		q := queries.NewGetActiveOrdersQuery()

		require.NoError(t, q.Validate())
	})

	t.Run("should reject directly instantiated query", func(t *testing.T) {
		var q queries.GetActiveOrdersQuery

		require.Error(t, q.Validate())
	})
}
