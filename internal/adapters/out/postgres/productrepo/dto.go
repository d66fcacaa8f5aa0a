// Package productrepo implements the product persistence gateway.
package productrepo

import (
	"time"

	"bakery/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the database representation of a product.
type ProductDTO struct {
	ID          int             `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:50;not null"`
	Description string          `gorm:"size:200;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"type:date;not null"`
	UpdatedAt   *time.Time      `gorm:"type:date"`
}

// TableName overrides GORM's naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) *product.Product {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Description, dto.Price, dto.CreatedAt, dto.UpdatedAt)
}
