package orderrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/faults"
	"bakery/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository. The handle may
// be a pooled connection or an open transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ListAll retrieves summaries of every order, ordered by id ascending.
func (r *GormOrderRepository) ListAll(ctx context.Context) ([]order.Summary, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			id_product,
			delivery_date,
			status
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, faults.Classify(err)
	}
	defer rows.Close()

	summaries := make([]order.Summary, 0)
	for rows.Next() {
		var s order.Summary
		var status string

		if err = rows.Scan(&s.ID, &s.CustomerName, &s.ProductID, &s.DeliveryDate, &status); err != nil {
			return nil, faults.Classify(err)
		}

		s.Status = order.Status(status)
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, faults.Classify(err)
	}

	return summaries, nil
}

// GetByID retrieves the full order by its identifier.
func (r *GormOrderRepository) GetByID(ctx context.Context, id int) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		return nil, faults.ClassifyScoped(err, "Order", id)
	}

	return toDomain(dto)
}

// GetByIDForUpdate retrieves the full order holding a row-level lock until
// the surrounding transaction completes.
func (r *GormOrderRepository) GetByIDForUpdate(ctx context.Context, id int) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		return nil, faults.ClassifyScoped(err, "Order", id)
	}

	return toDomain(dto)
}

// Insert persists a new order and returns the generated identifier.
func (r *GormOrderRepository) Insert(ctx context.Context, aggregate *order.Order) (int, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, faults.Classify(err)
	}

	return dto.ID, nil
}

// ApplyPartial assigns only the supplied columns onto the existing row.
// Omitted columns are left untouched.
func (r *GormOrderRepository) ApplyPartial(ctx context.Context, id int, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return faults.ClassifyScoped(result.Error, "Order", id)
	}

	if result.RowsAffected == 0 {
		return faults.ClassifyScoped(gorm.ErrRecordNotFound, "Order", id)
	}

	return nil
}

// DeleteByID removes the row.
func (r *GormOrderRepository) DeleteByID(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, id)
	if result.Error != nil {
		return faults.ClassifyScoped(result.Error, "Order", id)
	}

	if result.RowsAffected == 0 {
		return faults.ClassifyScoped(gorm.ErrRecordNotFound, "Order", id)
	}

	return nil
}
