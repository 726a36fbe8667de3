package order

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Role identifies which terminal a sync client is acting as. Each role sees
// a subset of statuses and may trigger a fixed set of transitions from its
// UI actions. These restrictions live entirely on the client side; the
// server accepts any enumerated status from anyone.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleDepot is the depot terminal: it works the shelf queue, marking
	// parcels ready for delivery and re-shelving failed deliveries.
	RoleDepot

	// RoleDelivery is the counter terminal: it hands parcels to customers
	// and flags the ones that could not be delivered.
	RoleDelivery
)

// ParseRole converts a role name ("depot" or "delivery") into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "depot":
		return RoleDepot, nil
	case "delivery":
		return RoleDelivery, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// String returns the role name used in configuration and logs.
func (r Role) String() string {
	switch r {
	case RoleDepot:
		return "depot"
	case RoleDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Validate checks that the role is one of the two terminal roles.
func (r Role) Validate() error {
	if r != RoleDepot && r != RoleDelivery {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// VisibleStatuses returns the statuses this role's terminal displays, in
// display-priority order. The depot lists failed deliveries ahead of the
// incoming queue; the delivery counter only shows parcels ready to hand out.
//
// A cache entry whose status leaves this set is dropped from the terminal's
// view entirely.
func (r Role) VisibleStatuses() []Status {
	switch r {
	case RoleDepot:
		return []Status{NoEntregado, PedidoAlDeposito}
	case RoleDelivery:
		return []Status{ListoParaEntrega}
	default:
		return nil
	}
}

// CanDisplay reports whether the role's terminal shows orders in the given
// status.
func (r Role) CanDisplay(status Status) bool {
	for _, s := range r.VisibleStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// Transitions returns the status changes this role's UI actions may trigger,
// keyed by the status the parcel is currently in.
//
// Depot: PedidoAlDeposito -> ListoParaEntrega (mark ready) and
// NoEntregado -> EnDeposito (re-shelve). Delivery: ListoParaEntrega ->
// EntregadoAlCliente (handed over) or NoEntregado (attempt failed); the
// delivery pair shares a source status, so the terminal chooses between the
// two targets by user gesture rather than by lookup.
func (r Role) Transitions() map[Status][]Status {
	switch r {
	case RoleDepot:
		return map[Status][]Status{
			PedidoAlDeposito: {ListoParaEntrega},
			NoEntregado:      {EnDeposito},
		}
	case RoleDelivery:
		return map[Status][]Status{
			ListoParaEntrega: {EntregadoAlCliente, NoEntregado},
		}
	default:
		return nil
	}
}

// Allows reports whether the role may move a parcel from one status to
// another through its UI.
func (r Role) Allows(from, to Status) bool {
	for _, target := range r.Transitions()[from] {
		if target == to {
			return true
		}
	}
	return false
}

// NextStatus returns the single transition target for the given status, for
// roles whose actions are unambiguous. The depot's click action maps each
// visible status to exactly one target. For the delivery role the choice is
// gesture-driven, so NextStatus reports no target when a status has more
// than one.
func (r Role) NextStatus(from Status) (Status, bool) {
	targets := r.Transitions()[from]
	if len(targets) != 1 {
		return Unknown, false
	}
	return targets[0], true
}
