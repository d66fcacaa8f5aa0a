// Package faults translates low-level storage failures into the typed error
// set the rest of the application understands. Raw driver errors never leave
// the persistence layer.
package faults

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"bakery/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Classify maps a storage error onto the connectivity/query taxonomy.
// Context expiry counts as connectivity: the per-call timeout treats an
// unresponsive database the same as an unreachable one.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.NewConnectivityError(err)
	}
	if errors.Is(err, driver.ErrBadConn) {
		return errs.NewConnectivityError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errs.NewConnectivityError(err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// SQLSTATE class 08 is "connection exception".
		if strings.HasPrefix(string(pqErr.Code), "08") {
			return errs.NewConnectivityError(err)
		}
		return errs.NewQueryError(err)
	}

	return errs.NewQueryError(err)
}

// ClassifyScoped is Classify plus the not-found case for identifier-scoped
// reads, updates and deletes. A missing row is a domain outcome, not a
// storage fault.
func ClassifyScoped(err error, entity string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFoundError(entity, id)
	}
	return Classify(err)
}
