package productrepo

import (
	"context"

	"bakery/internal/adapters/out/postgres/faults"
	"bakery/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// ListRange retrieves a page of products ordered by id ascending.
func (r *GormProductRepository) ListRange(ctx context.Context, offset, limit int) ([]*product.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, faults.Classify(err)
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, toDomain(dto))
	}

	return products, nil
}

// Insert persists a new product and returns the generated identifier.
func (r *GormProductRepository) Insert(ctx context.Context, aggregate *product.Product) (int, error) {
	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, faults.Classify(err)
	}

	return dto.ID, nil
}

// DeleteByID removes the row.
func (r *GormProductRepository) DeleteByID(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, id)
	if result.Error != nil {
		return faults.ClassifyScoped(result.Error, "Product", id)
	}

	if result.RowsAffected == 0 {
		return faults.ClassifyScoped(gorm.ErrRecordNotFound, "Product", id)
	}

	return nil
}
