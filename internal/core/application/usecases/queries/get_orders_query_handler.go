package queries

import (
	"context"

	"tracking/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order rows straight from the database.
// Serves the list endpoint and the terminals' startup snapshots.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching rows in row id order, so
// results follow arrival order. The estado column stores the wire strings,
// so the filter is translated to strings before it hits SQL.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	sql := `
		SELECT
			pieza,
			guarda,
			estado,
			poste_restante
		FROM pedidos
	`
	var args []any
	if statuses := query.Statuses(); len(statuses) > 0 {
		estados := make([]string, 0, len(statuses))
		for _, s := range statuses {
			estados = append(estados, s.String())
		}
		sql += ` WHERE estado IN ?`
		args = append(args, estados)
	}
	sql += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var estado string

		if err = rows.Scan(&resp.Pieza, &resp.Guarda, &estado, &resp.PosteRestante); err != nil {
			return nil, err
		}

		status, parseErr := order.ParseStatus(estado)
		if parseErr != nil {
			return nil, parseErr
		}
		resp.Status = status

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
