// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain entity, handling
// the conversion between domain entities and the single-file SQLite table.
package orderrepo

import (
	"tracking/internal/core/domain/model/order"
)

// OrderDTO represents the pedidos table row. The schema mirrors the one the
// capture pipeline has always written: an autoincrement id (which doubles as
// the creation-order timestamp), the pieza and guarda codes, the estado wire
// string, and the later poste_restante column addition.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Pieza         string `gorm:"index"`
	Guarda        string
	Estado        string
	PosteRestante bool `gorm:"default:false"`
}

// TableName specifies the database table name for order rows.
// Overrides GORM's default naming convention to use "pedidos".
func (OrderDTO) TableName() string {
	return "pedidos"
}

// fromDomain converts an order entity to its database representation.
// The estado column stores the status wire string, not the enum ordinal,
// keeping the file readable by the other tools that open it directly.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID(),
		Pieza:         o.Pieza(),
		Guarda:        o.Guarda(),
		Estado:        o.Status().String(),
		PosteRestante: o.PosteRestante(),
	}
}

// toDomain converts a database row back into an order entity.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Estado)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, dto.Pieza, dto.Guarda, status, dto.PosteRestante)
}
