package commands

import (
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Only enum membership is validated; the command accepts
// any of the five statuses after any other, matching the mutation API
// contract.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	pieza  string
	status order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that pieza is non-empty and status is an enumerated value.
func NewChangeOrderStatusCommand(pieza string, status order.Status) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setPieza(pieza),
		statusCommand.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// Pieza returns the parcel tracking code identifying the order.
func (c ChangeOrderStatusCommand) Pieza() string {
	return c.pieza
}

// Status returns the target lifecycle status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setPieza(pieza string) error {
	if pieza == "" {
		return errs.NewValueIsRequiredError("pieza")
	}

	c.pieza = pieza
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
