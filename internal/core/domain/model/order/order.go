package order

import (
	"errors"

	"tracking/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a tracked parcel in the depot-and-delivery workflow.
//
// Order follows these invariants:
//   - Pieza and guarda must be non-empty strings
//   - Status is always one of the five enumerated values
//   - Can only be created through NewOrder or RestoreOrder
//
// Pieza is the external key used by every endpoint and event. Its uniqueness
// is expected but not enforced: the store always appends, so two physical
// arrivals of the same parcel produce two rows. The row id orders rows by
// creation time and stands in for a creation timestamp.
type Order struct {
	// id is the autoincrement row id; zero until persisted
	id int64

	// pieza is the parcel tracking code (external key)
	pieza string

	// guarda is the storage-slot code
	guarda string

	// posteRestante marks a parcel held for pickup instead of slotted
	posteRestante bool

	// status is the current lifecycle state
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in the initial PedidoAlDeposito status.
//
// Both pieza and guarda must be non-empty; this is the only validation the
// capture boundary applies. The pieza format (see IsValidTrackingCode) is
// expected but deliberately not enforced here, so malformed codes coming
// from the capture collaborator still produce a row.
func NewOrder(pieza, guarda string, posteRestante bool) (*Order, error) {
	order := &Order{
		status:        PedidoAlDeposito,
		posteRestante: posteRestante,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setPieza(pieza),
		order.setGuarda(guarda),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// Unlike NewOrder it accepts any valid status and carries the row id
// assigned by the database.
func RestoreOrder(id int64, pieza, guarda string, status Status, posteRestante bool) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		id:            id,
		status:        status,
		posteRestante: posteRestante,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setPieza(pieza),
		order.setGuarda(guarda),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// a factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the autoincrement row id, or zero for an unpersisted order.
func (o *Order) ID() int64 {
	return o.id
}

// Pieza returns the parcel tracking code.
func (o *Order) Pieza() string {
	return o.pieza
}

// Guarda returns the storage-slot code.
func (o *Order) Guarda() string {
	return o.guarda
}

// PosteRestante reports whether the parcel is held for pickup rather than
// assigned a normal slot.
func (o *Order) PosteRestante() bool {
	return o.posteRestante
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to newStatus.
//
// Only enum membership is checked. The transition graph is a client-side
// restriction: the server accepts any enumerated value after any other, and
// this method preserves that observable behavior.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setPieza(pieza string) error {
	if pieza == "" {
		return errs.NewValueIsRequiredError("pieza")
	}

	o.pieza = pieza
	return nil
}

func (o *Order) setGuarda(guarda string) error {
	if guarda == "" {
		return errs.NewValueIsRequiredError("guarda")
	}

	o.guarda = guarda
	return nil
}
