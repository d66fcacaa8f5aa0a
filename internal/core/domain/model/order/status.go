package order

import "fmt"

// Status represents the lifecycle state of an order.
//
// The expected progression is:
//
//	pending ──> received ──> ready ──> delivered
//	     │           │          │
//	     └───────────┴──────────┴──> cancelled
//
// Only the terminal states are enforced programmatically: once an order is
// delivered or cancelled no field may be modified. Intermediate transition
// legality is intentionally not validated on write.
type Status string

const (
	// StatusPending is the initial status assigned on creation.
	StatusPending Status = "pending"

	// StatusReceived indicates the shop has acknowledged the order.
	StatusReceived Status = "received"

	// StatusReady indicates the order is baked and awaiting delivery.
	StatusReady Status = "ready"

	// StatusDelivered is a terminal status. Delivered orders are immutable.
	StatusDelivered Status = "delivered"

	// StatusCancelled is a terminal status. Cancelled orders are immutable.
	StatusCancelled Status = "cancelled"
)

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusReceived, StatusReady, StatusDelivered, StatusCancelled:
		return nil
	}
	return fmt.Errorf("%q is not a valid order status", string(s))
}

// IsTerminal reports whether the status locks the order against any further
// mutation.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
