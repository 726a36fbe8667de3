// Package http exposes the REST mutation and query surface of the order
// service. Every write goes through the command handlers, which in turn
// broadcast the authoritative result to subscribed terminals; the read
// endpoint serves the snapshot a terminal loads before subscribing.
package http

import (
	"errors"
	"net/http"
	"strings"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrdersHandler:         getOrdersHandler,
	}
}

// RegisterRoutes attaches the REST endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/pedido", s.CreateOrder)
	e.PUT("/pedido/:pieza", s.ChangeOrderStatus)
	e.GET("/pedidos", s.GetOrders)
	e.GET("/health", s.Health)
}

// CreateOrder handles POST /pedido - registers an incoming parcel.
// New orders always start in the initial depot status; the request cannot
// choose one.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.Pieza, req.Guarda, req.PosteRestante)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, StatusOKResponse{Status: "ok"})
}

// ChangeOrderStatus handles PUT /pedido/:pieza - moves an order to a new
// status. The path carries the tracking code, the body the target status.
// Any enumerated status is accepted; which moves a terminal offers is the
// terminal's concern, not the server's.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	pieza := ctx.Param("pieza")

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Estado)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(pieza, status)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, ChangeStatusResponse{
		Status:      "ok",
		Pieza:       pieza,
		NuevoEstado: status.String(),
	})
}

// GetOrders handles GET /pedidos - retrieves orders, optionally filtered
// by status. The estado query parameter takes a comma-separated list of
// status names; omitting it returns every row.
func (s *Server) GetOrders(ctx echo.Context) error {
	statuses, err := parseStatusFilter(ctx.QueryParam("estado"))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(statuses...)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			Pieza:         o.Pieza,
			Guarda:        o.Guarda,
			Estado:        o.Status.String(),
			PosteRestante: o.PosteRestante,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// parseStatusFilter splits a comma-separated estado parameter into status
// values. Blank segments are skipped so trailing commas do not fail the
// request; an unknown status name does.
func parseStatusFilter(raw string) ([]order.Status, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var statuses []order.Status
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		status, err := order.ParseStatus(token)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// domainErrorResponse maps application errors onto HTTP statuses.
// Validation failures are client faults, missing objects are 404, and
// everything else is an internal error with the detail kept server-side.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
