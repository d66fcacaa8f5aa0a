// Package queries contains the read-side operations. Query handlers go
// through the persistence gateway's read capabilities and render dates for
// the wire: the order list uses the legacy DD-MM-YYYY display format while
// single-order reads use ISO YYYY-MM-DD. That asymmetry is part of the
// service's public contract.
package queries
