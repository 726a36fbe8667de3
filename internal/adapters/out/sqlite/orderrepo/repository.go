package orderrepo

import (
	"context"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository on the single-file
// SQLite store. Every call is a short-lived read or write with no
// surrounding transaction; concurrent writers to the same pieza are
// last-write-wins.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Migrate creates or updates the pedidos table. There is no migration
// tooling beyond GORM's AutoMigrate; the poste_restante column is added in
// place on stores written before it existed.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{})
}

// Add appends a new row for the order. No uniqueness check runs against
// pieza: a code that already has rows simply gets another one.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0 // let the autoincrement column assign the row id
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateStatusByPieza sets the status on the most recent row matching pieza
// and returns that row with its new status. With duplicate pieza values the
// latest arrival wins the lookup; older rows keep their status.
func (r *GormOrderRepository) UpdateStatusByPieza(
	ctx context.Context,
	pieza string,
	status order.Status,
) (*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("pieza = ?", pieza).
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NewObjectNotFoundError("pieza", pieza)
		}
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Update("estado", status.String())
	if result.Error != nil {
		return nil, result.Error
	}

	dto.Estado = status.String()
	return toDomain(dto)
}

// GetByStatuses retrieves rows whose estado is in the filter set, in row id
// order. An empty filter returns every row.
func (r *GormOrderRepository) GetByStatuses(
	ctx context.Context,
	statuses []order.Status,
) ([]*order.Order, error) {
	tx := r.db.WithContext(ctx).Order("id")
	if len(statuses) > 0 {
		estados := make([]string, 0, len(statuses))
		for _, s := range statuses {
			estados = append(estados, s.String())
		}
		tx = tx.Where("estado IN ?", estados)
	}

	var dtos []OrderDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
