package commands

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a validated request to create a new order.
// It is built from the raw JSON payload; construction fails with a
// ValidationError listing every violated field.
type CreateOrderCommand struct {
	customerName  string
	customerPhone string
	customerEmail string
	productID     int
	deliveryDate  time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw payload against the creation
// schema: all five fields required, string edges trimmed, per-field
// constraints per the order model. All violations are collected before
// returning.
func NewCreateOrderCommand(payload map[string]any) (CreateOrderCommand, error) {
	r := newPayloadReader(payload)
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if name, ok := r.requireString("customer_name"); ok {
		if err := order.ValidateCustomerName(name); err != nil {
			r.addViolation("customer_name", err.Error())
		} else {
			cmd.customerName = name
		}
	}

	if phone, ok := r.requireString("customer_phone"); ok {
		if err := order.ValidateCustomerPhone(phone); err != nil {
			r.addViolation("customer_phone", err.Error())
		} else {
			cmd.customerPhone = phone
		}
	}

	if email, ok := r.requireString("customer_email"); ok {
		if err := order.ValidateCustomerEmail(email); err != nil {
			r.addViolation("customer_email", err.Error())
		} else {
			cmd.customerEmail = email
		}
	}

	if productID, ok := r.requireInt("id_product"); ok {
		if err := order.ValidateProductID(productID); err != nil {
			r.addViolation("id_product", err.Error())
		} else {
			cmd.productID = productID
		}
	}

	if deliveryDate, ok := r.requireDate("delivery_date"); ok {
		cmd.deliveryDate = deliveryDate
	}

	if err := r.err(); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the trimmed customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the trimmed customer phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerEmail returns the trimmed customer email address.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// ProductID returns the referenced product identifier.
func (c CreateOrderCommand) ProductID() int {
	return c.productID
}

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}
