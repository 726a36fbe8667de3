package order_test

import (
	"testing"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("creates order in initial status", func(t *testing.T) {
		// When
		o, err := order.NewOrder("HC123456789AR", "58", false)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "HC123456789AR", o.Pieza())
		assert.Equal(t, "58", o.Guarda())
		assert.Equal(t, order.PedidoAlDeposito, o.Status())
		assert.False(t, o.PosteRestante())
		assert.Zero(t, o.ID())
		require.NoError(t, o.Validate())
	})

	t.Run("carries the poste restante flag", func(t *testing.T) {
		o, err := order.NewOrder("HC123456789AR", "PR", true)

		require.NoError(t, err)
		assert.True(t, o.PosteRestante())
	})

	t.Run("requires pieza", func(t *testing.T) {
		_, err := order.NewOrder("", "58", false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires guarda", func(t *testing.T) {
		_, err := order.NewOrder("HC123456789AR", "", false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("does not enforce the tracking code format", func(t *testing.T) {
		// The capture boundary only requires non-empty strings; malformed
		// codes still produce a row.
		o, err := order.NewOrder("not-a-code", "12", false)

		require.NoError(t, err)
		assert.Equal(t, "not-a-code", o.Pieza())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores any valid status with the row id", func(t *testing.T) {
		o, err := order.RestoreOrder(42, "HC123456789AR", "58", order.NoEntregado, false)

		require.NoError(t, err)
		assert.Equal(t, int64(42), o.ID())
		assert.Equal(t, order.NoEntregado, o.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(1, "HC123456789AR", "58", order.Unknown, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("accepts any enumerated status after any other", func(t *testing.T) {
		// The server enforces enum membership only; the transition graph is
		// a client-side restriction.
		o, err := order.NewOrder("HC123456789AR", "58", false)
		require.NoError(t, err)

		for _, target := range order.AllStatuses() {
			require.NoError(t, o.ChangeStatus(target))
			assert.Equal(t, target, o.Status())
		}

		// Even a "backwards" move out of a terminal status is accepted.
		require.NoError(t, o.ChangeStatus(order.PedidoAlDeposito))
	})

	t.Run("rejects values outside the enum", func(t *testing.T) {
		o, err := order.NewOrder("HC123456789AR", "58", false)
		require.NoError(t, err)

		err = o.ChangeStatus(order.Status(42))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.PedidoAlDeposito, o.Status(), "status must not change on rejection")
	})
}
