package order

import (
	"errors"
	"fmt"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Field-level constraint errors. Their text doubles as the per-field message
// reported to clients, so it describes the rule, not the implementation.
var (
	ErrCustomerNameLength   = errors.New("must be between 1 and 100 characters")
	ErrCustomerPhoneLength  = errors.New("must be between 9 and 15 characters")
	ErrCustomerEmailFormat  = errors.New("must be a valid email address")
	ErrProductIDNotPositive = errors.New("must be greater than 0")
	ErrTotalAmountNegative  = errors.New("must not be negative")
)

// ValidateCustomerName checks the 1 to 100 character constraint.
func ValidateCustomerName(name string) error {
	if l := utf8.RuneCountInString(name); l < 1 || l > 100 {
		return ErrCustomerNameLength
	}
	return nil
}

// ValidateCustomerPhone checks the 9 to 15 character constraint.
func ValidateCustomerPhone(phone string) error {
	if l := utf8.RuneCountInString(phone); l < 9 || l > 15 {
		return ErrCustomerPhoneLength
	}
	return nil
}

// ValidateCustomerEmail checks that the value is a plain RFC 5322 address.
func ValidateCustomerEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrCustomerEmailFormat
	}
	return nil
}

// ValidateProductID checks that the referenced product identifier is positive.
func ValidateProductID(id int) error {
	if id <= 0 {
		return ErrProductIDNotPositive
	}
	return nil
}

// ValidateTotalAmount checks that the amount is not negative.
func ValidateTotalAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrTotalAmountNegative
	}
	return nil
}

// Order is the aggregate root for a customer's cake order.
//
// Invariants:
//   - The identifier is assigned by the persistence layer and never changes.
//   - Customer fields satisfy the Validate* constraints above.
//   - An order in a terminal status accepts no further mutation.
type Order struct {
	id            int
	customerName  string
	customerPhone string
	customerEmail string
	productID     int
	deliveryDate  time.Time
	status        Status
	totalAmount   decimal.Decimal

	isConstructed bool
}

// NewOrder creates an order from validated creation data. The identifier is
// zero until the persistence layer assigns one; status defaults to pending
// and the total amount to zero.
func NewOrder(customerName, customerPhone, customerEmail string, productID int, deliveryDate time.Time) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		totalAmount:   decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setCustomerEmail(customerEmail),
		o.setProductID(productID),
		o.setDeliveryDate(deliveryDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including the fields
// the storage layer owns. Used only by repository implementations.
func RestoreOrder(
	id int,
	customerName, customerPhone, customerEmail string,
	productID int,
	deliveryDate time.Time,
	status Status,
	totalAmount decimal.Decimal,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerName:  customerName,
		customerPhone: customerPhone,
		customerEmail: customerEmail,
		productID:     productID,
		deliveryDate:  deliveryDate,
		status:        status,
		totalAmount:   totalAmount,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier, zero if not yet persisted.
func (o *Order) ID() int {
	return o.id
}

// CustomerName returns the customer's full name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerEmail returns the customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// ProductID returns the identifier of the ordered product.
func (o *Order) ProductID() int {
	return o.productID
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// IsLocked reports whether the order is in a terminal status and therefore
// rejects any further mutation.
func (o *Order) IsLocked() bool {
	return o.status.IsTerminal()
}

func (o *Order) setCustomerName(name string) error {
	if err := ValidateCustomerName(name); err != nil {
		return fmt.Errorf("customer_name: %w", err)
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if err := ValidateCustomerPhone(phone); err != nil {
		return fmt.Errorf("customer_phone: %w", err)
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setCustomerEmail(email string) error {
	if err := ValidateCustomerEmail(email); err != nil {
		return fmt.Errorf("customer_email: %w", err)
	}
	o.customerEmail = email
	return nil
}

func (o *Order) setProductID(id int) error {
	if err := ValidateProductID(id); err != nil {
		return fmt.Errorf("id_product: %w", err)
	}
	o.productID = id
	return nil
}

func (o *Order) setDeliveryDate(d time.Time) error {
	if d.IsZero() {
		return errors.New("delivery_date: must be set")
	}
	o.deliveryDate = d
	return nil
}

// Summary is the reduced projection returned by the order list operation.
type Summary struct {
	ID           int
	CustomerName string
	ProductID    int
	DeliveryDate time.Time
	Status       Status
}
