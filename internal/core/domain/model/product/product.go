// Package product contains the product entity sold by the shop.
package product

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	ErrNameLength        = errors.New("must be between 1 and 50 characters")
	ErrDescriptionLength = errors.New("must be between 1 and 200 characters")
	ErrPriceNegative     = errors.New("must not be negative")
)

// ValidateName checks the 1 to 50 character constraint.
func ValidateName(name string) error {
	if l := utf8.RuneCountInString(name); l < 1 || l > 50 {
		return ErrNameLength
	}
	return nil
}

// ValidateDescription checks the 1 to 200 character constraint.
func ValidateDescription(description string) error {
	if l := utf8.RuneCountInString(description); l < 1 || l > 200 {
		return ErrDescriptionLength
	}
	return nil
}

// ValidatePrice checks that the price is not negative.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrPriceNegative
	}
	return nil
}

// Product is a sellable item. The identifier is assigned by the persistence
// layer; UpdatedAt is nil until the product is first modified.
type Product struct {
	id          int
	name        string
	description string
	price       decimal.Decimal
	createdAt   time.Time
	updatedAt   *time.Time
}

// NewProduct creates a product from validated creation data.
func NewProduct(name, description string, price decimal.Decimal, createdAt time.Time) (*Product, error) {
	if err := errors.Join(
		ValidateName(name),
		ValidateDescription(description),
		ValidatePrice(price),
	); err != nil {
		return nil, err
	}

	return &Product{
		name:        name,
		description: description,
		price:       price,
		createdAt:   createdAt,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id int, name, description string, price decimal.Decimal, createdAt time.Time, updatedAt *time.Time) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() int                { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Description() string    { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() *time.Time  { return p.updatedAt }
