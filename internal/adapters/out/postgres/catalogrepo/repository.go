// Package catalogrepo implements the cake catalog persistence gateway.
package catalogrepo

import (
	"context"
	"time"

	"bakery/internal/adapters/out/postgres/faults"
	"bakery/internal/core/domain/model/catalog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CakeDTO is the database representation of a catalog entry.
type CakeDTO struct {
	ID          int             `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:50;not null"`
	Description string          `gorm:"size:200;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"type:date;not null"`
	UpdatedAt   time.Time       `gorm:"type:date;not null"`
}

// TableName overrides GORM's naming convention to use "cake_catalog".
func (CakeDTO) TableName() string {
	return "cake_catalog"
}

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ListAll retrieves every catalog entry ordered by id ascending.
func (r *GormCatalogRepository) ListAll(ctx context.Context) ([]*catalog.Cake, error) {
	var dtos []CakeDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, faults.Classify(err)
	}

	cakes := make([]*catalog.Cake, 0, len(dtos))
	for _, dto := range dtos {
		cakes = append(cakes, catalog.RestoreCake(dto.ID, dto.Name, dto.Description, dto.Price, dto.CreatedAt, dto.UpdatedAt))
	}

	return cakes, nil
}

// Insert persists a new catalog entry and returns the generated identifier.
func (r *GormCatalogRepository) Insert(ctx context.Context, aggregate *catalog.Cake) (int, error) {
	dto := CakeDTO{
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, faults.Classify(err)
	}

	return dto.ID, nil
}
