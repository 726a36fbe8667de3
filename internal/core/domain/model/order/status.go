package order

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel order.
//
// The states exercised by the two terminal roles form this graph:
//
//	PedidoAlDeposito ──(depot marks ready)──> ListoParaEntrega
//	ListoParaEntrega ──(delivery succeeds)──> EntregadoAlCliente   [terminal]
//	ListoParaEntrega ──(delivery fails)─────> NoEntregado
//	NoEntregado      ──(depot re-shelves)───> EnDeposito
//
// The graph is advisory: the server accepts any transition between
// enumerated values, and only the role terminals restrict which
// transitions their user actions can trigger. EnDeposito has no outgoing
// transition anywhere in the system; rows parked there require manual
// intervention.
//
// Status serializes to the Spanish wire strings used by the REST and
// WebSocket payloads ("Pedido al Deposito" etc.), which are also the
// values stored in the estado column.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PedidoAlDeposito is the initial status assigned to every created order:
	// the depot has been asked to pull the parcel from its slot.
	PedidoAlDeposito

	// ListoParaEntrega indicates the depot pulled the parcel and it is
	// waiting at the counter for the delivery role.
	ListoParaEntrega

	// EntregadoAlCliente indicates the parcel was handed to the customer.
	// No role acts on this status again.
	EntregadoAlCliente

	// NoEntregado indicates a failed delivery attempt; the parcel goes back
	// to the depot queue.
	NoEntregado

	// EnDeposito indicates the depot re-shelved a parcel after a failed
	// delivery. Nothing transitions out of this status.
	EnDeposito
)

// getStatusStrings returns the wire string for every Status value,
// including Unknown, to support display of any value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		PedidoAlDeposito:   "Pedido al Deposito",
		ListoParaEntrega:   "Listo para ser Entregado",
		EntregadoAlCliente: "Entregado al Cliente",
		NoEntregado:        "No Entregado",
		EnDeposito:         "En Deposito",
	}
}

// getValidStatusStrings returns only the valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PedidoAlDeposito:   "Pedido al Deposito",
		ListoParaEntrega:   "Listo para ser Entregado",
		EntregadoAlCliente: "Entregado al Cliente",
		NoEntregado:        "No Entregado",
		EnDeposito:         "En Deposito",
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{PedidoAlDeposito, ListoParaEntrega, EntregadoAlCliente, NoEntregado, EnDeposito}
}

// ParseStatus converts a wire string into a Status.
//
// Returns a ValueIsInvalidError for any string that is not one of the five
// enumerated wire values. Matching is exact: the wire strings are fixed and
// shared with the persisted estado column, so no normalization is applied.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("estado", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five enumerated states.
//
// Enum membership is the only status rule the server enforces: any valid
// status may follow any other, matching the observable behavior of the
// mutation API.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("estado", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
//
// Returns "Unknown" for invalid values. This method implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
