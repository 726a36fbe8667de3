package commands

import (
	"context"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles status mutations against existing
// orders. A successful change broadcasts the authoritative echo, guarda
// included, to every subscriber, the originator among them.
type ChangeOrderStatusCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// Requires the order repository and the broadcast publisher.
func NewChangeOrderStatusCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle processes the status change command.
//
// The repository resolves pieza to its most recent row, mutates it, and
// hands back the stored guarda for the event. An unknown pieza surfaces as
// an ObjectNotFoundError with no mutation and no broadcast.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	updated, err := h.orders.UpdateStatusByPieza(ctx, cmd.Pieza(), cmd.Status())
	if err != nil {
		return err
	}

	h.publisher.Publish(order.NewEvent(updated))
	return nil
}
