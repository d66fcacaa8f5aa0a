package commands

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateCakeCommandIsNotConstructed = errors.New(
		"CreateCakeCommand must be created via NewCreateCakeCommand constructor",
	)
)

// CreateCakeCommand represents a validated request to add a cake to the
// public catalog.
type CreateCakeCommand struct {
	name        string
	description string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateCakeCommand validates the raw payload against the catalog schema,
// collecting all violations.
func NewCreateCakeCommand(payload map[string]any) (CreateCakeCommand, error) {
	r := newPayloadReader(payload)
	cmd := CreateCakeCommand{guard: guard.NewConstructorGuard()}

	if name, ok := r.requireString("name"); ok {
		if err := catalog.ValidateName(name); err != nil {
			r.addViolation("name", err.Error())
		} else {
			cmd.name = name
		}
	}

	if description, ok := r.requireString("description"); ok {
		if err := catalog.ValidateDescription(description); err != nil {
			r.addViolation("description", err.Error())
		} else {
			cmd.description = description
		}
	}

	if price, ok := r.requireNumber("price"); ok {
		d := decimal.NewFromFloat(price)
		if err := catalog.ValidatePrice(d); err != nil {
			r.addViolation("price", err.Error())
		} else {
			cmd.price = d
		}
	}

	if err := r.err(); err != nil {
		return CreateCakeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCakeCommand) Validate() error {
	return c.guard.Validate(ErrCreateCakeCommandIsNotConstructed)
}

// Name returns the trimmed cake name.
func (c CreateCakeCommand) Name() string { return c.name }

// Description returns the trimmed cake description.
func (c CreateCakeCommand) Description() string { return c.description }

// Price returns the cake price.
func (c CreateCakeCommand) Price() decimal.Decimal { return c.price }

// CreateCakeCommandHandler handles catalog entry creation.
type CreateCakeCommandHandler struct {
	uowFactory CatalogUoWFactory
	now        func() time.Time
}

// NewCreateCakeCommandHandler creates a handler for catalog creation.
func NewCreateCakeCommandHandler(uowFactory CatalogUoWFactory, now func() time.Time) CreateCakeCommandHandler {
	return CreateCakeCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle persists the catalog entry and returns the generated identifier.
func (h CreateCakeCommandHandler) Handle(ctx context.Context, cmd CreateCakeCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := catalog.NewCake(cmd.Name(), cmd.Description(), cmd.Price(), h.now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.CatalogRepository().Insert(ctx, aggregate)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
