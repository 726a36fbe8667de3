package commands

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a captured parcel.
// The capture collaborator hands over a validated {pieza, guarda} pair;
// creation itself only requires both strings to be non-empty.
//
// Creating the same pieza twice is allowed and yields two rows. Duplicate
// detection is deliberately not provided: each physical arrival of a parcel
// is its own record.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	pieza         string
	guarda        string
	posteRestante bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new parcel order.
// Validates that pieza and guarda are non-empty.
func NewCreateOrderCommand(pieza, guarda string, posteRestante bool) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		posteRestante: posteRestante,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setPieza(pieza),
		orderCommand.setGuarda(guarda),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Pieza returns the parcel tracking code.
func (c CreateOrderCommand) Pieza() string {
	return c.pieza
}

// Guarda returns the storage-slot code.
func (c CreateOrderCommand) Guarda() string {
	return c.guarda
}

// PosteRestante reports whether the parcel is held for pickup.
func (c CreateOrderCommand) PosteRestante() bool {
	return c.posteRestante
}

func (c *CreateOrderCommand) setPieza(pieza string) error {
	if pieza == "" {
		return errs.NewValueIsRequiredError("pieza")
	}

	c.pieza = pieza
	return nil
}

func (c *CreateOrderCommand) setGuarda(guarda string) error {
	if guarda == "" {
		return errs.NewValueIsRequiredError("guarda")
	}

	c.guarda = guarda
	return nil
}
