// Package queries contains read-only operations against the order store.
// Implements the Query side of the CQRS split: handlers read through GORM
// directly instead of going through the repository port.
package queries

import (
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves orders, optionally filtered by status.
//
// An empty filter returns every row regardless of status. Role terminals
// pass their visible-status subset here to build their startup snapshot.
type GetOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for orders in the given statuses.
// Call it with no arguments to fetch all rows. Every status in the filter
// must be a valid enumerated value.
func NewGetOrdersQuery(statuses ...order.Status) (GetOrdersQuery, error) {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Statuses returns the status filter; empty means no filter.
func (q GetOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// GetOrdersQueryResponse is one order row in a query result.
type GetOrdersQueryResponse struct {
	Pieza         string
	Guarda        string
	Status        order.Status
	PosteRestante bool
}
