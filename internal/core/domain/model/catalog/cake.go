// Package catalog contains the cake catalog entity, the public listing of
// cakes the shop offers.
package catalog

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

// Cake is a single catalog entry.
type Cake struct {
	id          int
	name        string
	description string
	price       decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

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

// NewCake creates a catalog entry from validated creation data.
func NewCake(name, description string, price decimal.Decimal, createdAt time.Time) (*Cake, error) {
	if err := errors.Join(
		ValidateName(name),
		ValidateDescription(description),
		ValidatePrice(price),
	); err != nil {
		return nil, err
	}

	return &Cake{
		name:        name,
		description: description,
		price:       price,
		createdAt:   createdAt,
		updatedAt:   createdAt,
	}, nil
}

// RestoreCake reconstructs a catalog entry from persistence.
func RestoreCake(id int, name, description string, price decimal.Decimal, createdAt, updatedAt time.Time) *Cake {
	return &Cake{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Cake) ID() int                { return c.id }
func (c *Cake) Name() string           { return c.name }
func (c *Cake) Description() string    { return c.description }
func (c *Cake) Price() decimal.Decimal { return c.price }
func (c *Cake) CreatedAt() time.Time   { return c.createdAt }
func (c *Cake) UpdatedAt() time.Time   { return c.updatedAt }
