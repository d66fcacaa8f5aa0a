// Package order contains the order aggregate and its field-level business
// rules. An order records who ordered which cake, when it must be delivered,
// where the order is in its lifecycle and what it costs.
package order
