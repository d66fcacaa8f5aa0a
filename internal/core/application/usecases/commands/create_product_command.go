package commands

import (
	"errors"

	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a validated request to create a product.
type CreateProductCommand struct {
	name        string
	description string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateProductCommand validates the raw payload against the product
// schema, collecting all violations.
func NewCreateProductCommand(payload map[string]any) (CreateProductCommand, error) {
	r := newPayloadReader(payload)
	cmd := CreateProductCommand{guard: guard.NewConstructorGuard()}

	if name, ok := r.requireString("name"); ok {
		if err := product.ValidateName(name); err != nil {
			r.addViolation("name", err.Error())
		} else {
			cmd.name = name
		}
	}

	if description, ok := r.requireString("description"); ok {
		if err := product.ValidateDescription(description); err != nil {
			r.addViolation("description", err.Error())
		} else {
			cmd.description = description
		}
	}

	if price, ok := r.requireNumber("price"); ok {
		d := decimal.NewFromFloat(price)
		if err := product.ValidatePrice(d); err != nil {
			r.addViolation("price", err.Error())
		} else {
			cmd.price = d
		}
	}

	if err := r.err(); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the trimmed product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the trimmed product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the product price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}
