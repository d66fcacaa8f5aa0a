package commands

import (
	"errors"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a validated partial update. Only the fields
// actually supplied in the payload are carried; omitted fields are absent
// from the column map entirely, so the gateway leaves them untouched.
type UpdateOrderCommand struct {
	orderID int
	fields  map[string]any

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the identifier and every supplied field
// against the same per-field constraints as creation. A field supplied as
// null is a violation, not an omission.
func NewUpdateOrderCommand(orderID int, payload map[string]any) (UpdateOrderCommand, error) {
	r := newPayloadReader(payload)
	fields := make(map[string]any)

	if orderID <= 0 {
		r.addViolation("order_id", "must be greater than 0")
	}

	if name, supplied := r.optionalString("customer_name"); supplied {
		if err := order.ValidateCustomerName(name); err != nil {
			r.addViolation("customer_name", err.Error())
		} else {
			fields["customer_name"] = name
		}
	}

	if phone, supplied := r.optionalString("customer_phone"); supplied {
		if err := order.ValidateCustomerPhone(phone); err != nil {
			r.addViolation("customer_phone", err.Error())
		} else {
			fields["customer_phone"] = phone
		}
	}

	if email, supplied := r.optionalString("customer_email"); supplied {
		if err := order.ValidateCustomerEmail(email); err != nil {
			r.addViolation("customer_email", err.Error())
		} else {
			fields["customer_email"] = email
		}
	}

	if productID, supplied := r.optionalInt("id_product"); supplied {
		if err := order.ValidateProductID(productID); err != nil {
			r.addViolation("id_product", err.Error())
		} else {
			fields["id_product"] = productID
		}
	}

	if deliveryDate, supplied := r.optionalDate("delivery_date"); supplied {
		fields["delivery_date"] = deliveryDate
	}

	if err := r.err(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		fields:  fields,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int {
	return c.orderID
}

// Fields returns the validated column values, keyed by column name,
// containing only the fields the client supplied.
func (c UpdateOrderCommand) Fields() map[string]any {
	return c.fields
}
