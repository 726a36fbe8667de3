package queries_test

import (
	"testing"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	t.Run("creates unfiltered query", func(t *testing.T) {
		// When
		query, err := queries.NewGetOrdersQuery()

		// Then
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Empty(t, query.Statuses())
	})

	t.Run("creates filtered query", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery(order.PedidoAlDeposito, order.NoEntregado)

		require.NoError(t, err)
		assert.Equal(t, []order.Status{order.PedidoAlDeposito, order.NoEntregado}, query.Statuses())
	})

	t.Run("rejects invalid status in filter", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(order.PedidoAlDeposito, order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOrdersQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
	})
}
