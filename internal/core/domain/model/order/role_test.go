package order_test

import (
	"testing"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("parses role names", func(t *testing.T) {
		depot, err := order.ParseRole("depot")
		require.NoError(t, err)
		assert.Equal(t, order.RoleDepot, depot)

		delivery, err := order.ParseRole("delivery")
		require.NoError(t, err)
		assert.Equal(t, order.RoleDelivery, delivery)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, s := range []string{"", "Depot", "consulta", "admin"} {
			role, err := order.ParseRole(s)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.RoleUnknown, role)
		}
	})
}

func TestRole_VisibleStatuses(t *testing.T) {
	t.Run("depot sees its queue with failed deliveries first", func(t *testing.T) {
		// NoEntregado entries take display priority over the incoming queue.
		assert.Equal(t,
			[]order.Status{order.NoEntregado, order.PedidoAlDeposito},
			order.RoleDepot.VisibleStatuses())
	})

	t.Run("delivery sees only parcels ready to hand out", func(t *testing.T) {
		assert.Equal(t,
			[]order.Status{order.ListoParaEntrega},
			order.RoleDelivery.VisibleStatuses())
	})

	t.Run("unknown role sees nothing", func(t *testing.T) {
		assert.Nil(t, order.RoleUnknown.VisibleStatuses())
	})
}

func TestRole_CanDisplay(t *testing.T) {
	tests := []struct {
		name    string
		role    order.Role
		status  order.Status
		visible bool
	}{
		{"depot shows incoming", order.RoleDepot, order.PedidoAlDeposito, true},
		{"depot shows failed", order.RoleDepot, order.NoEntregado, true},
		{"depot hides ready", order.RoleDepot, order.ListoParaEntrega, false},
		{"depot hides delivered", order.RoleDepot, order.EntregadoAlCliente, false},
		{"depot hides re-shelved", order.RoleDepot, order.EnDeposito, false},
		{"delivery shows ready", order.RoleDelivery, order.ListoParaEntrega, true},
		{"delivery hides incoming", order.RoleDelivery, order.PedidoAlDeposito, false},
		{"delivery hides failed", order.RoleDelivery, order.NoEntregado, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.role.CanDisplay(tt.status))
		})
	}
}

func TestRole_Allows(t *testing.T) {
	t.Run("depot transitions", func(t *testing.T) {
		assert.True(t, order.RoleDepot.Allows(order.PedidoAlDeposito, order.ListoParaEntrega))
		assert.True(t, order.RoleDepot.Allows(order.NoEntregado, order.EnDeposito))

		assert.False(t, order.RoleDepot.Allows(order.ListoParaEntrega, order.EntregadoAlCliente))
		assert.False(t, order.RoleDepot.Allows(order.PedidoAlDeposito, order.EntregadoAlCliente))
	})

	t.Run("delivery transitions", func(t *testing.T) {
		assert.True(t, order.RoleDelivery.Allows(order.ListoParaEntrega, order.EntregadoAlCliente))
		assert.True(t, order.RoleDelivery.Allows(order.ListoParaEntrega, order.NoEntregado))

		assert.False(t, order.RoleDelivery.Allows(order.PedidoAlDeposito, order.ListoParaEntrega))
		assert.False(t, order.RoleDelivery.Allows(order.NoEntregado, order.EnDeposito))
	})

	t.Run("nothing transitions out of EnDeposito", func(t *testing.T) {
		for _, role := range []order.Role{order.RoleDepot, order.RoleDelivery} {
			for _, target := range order.AllStatuses() {
				assert.False(t, role.Allows(order.EnDeposito, target))
			}
		}
	})
}

func TestRole_NextStatus(t *testing.T) {
	t.Run("depot actions are unambiguous", func(t *testing.T) {
		next, ok := order.RoleDepot.NextStatus(order.PedidoAlDeposito)
		require.True(t, ok)
		assert.Equal(t, order.ListoParaEntrega, next)

		next, ok = order.RoleDepot.NextStatus(order.NoEntregado)
		require.True(t, ok)
		assert.Equal(t, order.EnDeposito, next)
	})

	t.Run("delivery choice is gesture-driven", func(t *testing.T) {
		// Two possible targets from ListoParaEntrega, so no single next.
		_, ok := order.RoleDelivery.NextStatus(order.ListoParaEntrega)
		assert.False(t, ok)
	})

	t.Run("no transition for invisible statuses", func(t *testing.T) {
		_, ok := order.RoleDepot.NextStatus(order.EntregadoAlCliente)
		assert.False(t, ok)
	})
}
