// Package orderrepo implements the order persistence gateway: mapping
// between the order aggregate and its table row, and translating storage
// failures into the typed error set.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order.
type OrderDTO struct {
	ID            int             `gorm:"primaryKey;autoIncrement"`
	CustomerName  string          `gorm:"size:100;not null;index"`
	CustomerPhone string          `gorm:"size:15;not null"`
	CustomerEmail string          `gorm:"size:100;not null"`
	ProductID     int             `gorm:"column:id_product;not null"`
	DeliveryDate  time.Time       `gorm:"type:date;not null;index"`
	Status        string          `gorm:"size:20;not null;default:pending"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
}

// TableName overrides GORM's naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		CustomerEmail: aggregate.CustomerEmail(),
		ProductID:     aggregate.ProductID(),
		DeliveryDate:  aggregate.DeliveryDate(),
		Status:        aggregate.Status().String(),
		TotalAmount:   aggregate.TotalAmount(),
	}
}

// toDomain converts a row back into the order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.CustomerEmail,
		dto.ProductID,
		dto.DeliveryDate,
		order.Status(dto.Status),
		dto.TotalAmount,
	)
}
