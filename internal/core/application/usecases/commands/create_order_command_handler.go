package commands

import (
	"context"
	"log/slog"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Appends a new row in PedidoAlDeposito status and announces it to every
// subscriber. Creation always succeeds for non-empty input, including for a
// pieza that already has rows.
type CreateOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires the order repository and the broadcast publisher.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
		logger:    logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
//
// The store write and the broadcast are two independent steps; the event is
// only published after the row is persisted. Malformed tracking codes are
// logged but never rejected, since the capture collaborator owns format
// quality.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !order.IsValidTrackingCode(cmd.Pieza()) {
		h.logger.WarnContext(ctx, "Pieza does not match the expected tracking code format",
			"pieza", cmd.Pieza())
	}

	newOrder, err := order.NewOrder(cmd.Pieza(), cmd.Guarda(), cmd.PosteRestante())
	if err != nil {
		return err
	}

	if err = h.orders.Add(ctx, newOrder); err != nil {
		return err
	}

	h.publisher.Publish(order.NewEvent(newOrder))
	return nil
}
