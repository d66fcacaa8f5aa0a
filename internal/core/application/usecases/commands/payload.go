package commands

import (
	"math"
	"strings"
	"time"

	"bakery/internal/pkg/errs"
)

// isoDateLayout is the accepted wire format for dates in client payloads.
const isoDateLayout = "2006-01-02"

// payloadReader walks a raw JSON payload (decoded into map[string]any) and
// accumulates every field violation instead of failing fast. Presence is
// tracked from the map keys, which keeps "not supplied" distinct from
// "supplied as null".
type payloadReader struct {
	payload    map[string]any
	violations []errs.FieldViolation
}

func newPayloadReader(payload map[string]any) *payloadReader {
	return &payloadReader{payload: payload}
}

func (r *payloadReader) addViolation(field, message string) {
	r.violations = append(r.violations, errs.FieldViolation{Field: field, Message: message})
}

// err returns the collected violations as a ValidationError, or nil when the
// payload passed every check.
func (r *payloadReader) err() error {
	if len(r.violations) == 0 {
		return nil
	}
	return errs.NewValidationError(r.violations)
}

// requireString reads a mandatory string field, trimming edge whitespace.
// The second return value is false when the field is unusable.
func (r *payloadReader) requireString(field string) (string, bool) {
	raw, present := r.payload[field]
	if !present {
		r.addViolation(field, "is required")
		return "", false
	}
	return r.checkString(field, raw)
}

// optionalString reads an optional string field. The second return value is
// false when the field was absent or unusable.
func (r *payloadReader) optionalString(field string) (string, bool) {
	raw, present := r.payload[field]
	if !present {
		return "", false
	}
	return r.checkString(field, raw)
}

func (r *payloadReader) checkString(field string, raw any) (string, bool) {
	if raw == nil {
		r.addViolation(field, "must not be null")
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		r.addViolation(field, "must be a string")
		return "", false
	}
	return strings.TrimSpace(s), true
}

// requireInt reads a mandatory integer field. JSON numbers decode as
// float64, so the value must be integral to pass.
func (r *payloadReader) requireInt(field string) (int, bool) {
	raw, present := r.payload[field]
	if !present {
		r.addViolation(field, "is required")
		return 0, false
	}
	return r.checkInt(field, raw)
}

// optionalInt reads an optional integer field.
func (r *payloadReader) optionalInt(field string) (int, bool) {
	raw, present := r.payload[field]
	if !present {
		return 0, false
	}
	return r.checkInt(field, raw)
}

func (r *payloadReader) checkInt(field string, raw any) (int, bool) {
	if raw == nil {
		r.addViolation(field, "must not be null")
		return 0, false
	}
	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) {
		r.addViolation(field, "must be an integer")
		return 0, false
	}
	return int(f), true
}

// requireDate reads a mandatory ISO date field.
func (r *payloadReader) requireDate(field string) (time.Time, bool) {
	raw, present := r.payload[field]
	if !present {
		r.addViolation(field, "is required")
		return time.Time{}, false
	}
	return r.checkDate(field, raw)
}

// optionalDate reads an optional ISO date field.
func (r *payloadReader) optionalDate(field string) (time.Time, bool) {
	raw, present := r.payload[field]
	if !present {
		return time.Time{}, false
	}
	return r.checkDate(field, raw)
}

func (r *payloadReader) checkDate(field string, raw any) (time.Time, bool) {
	s, ok := r.checkString(field, raw)
	if !ok {
		return time.Time{}, false
	}

	d, err := time.Parse(isoDateLayout, s)
	if err != nil {
		r.addViolation(field, "must be a valid date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return d, true
}

// requireNumber reads a mandatory numeric field, integral or not.
func (r *payloadReader) requireNumber(field string) (float64, bool) {
	raw, present := r.payload[field]
	if !present {
		r.addViolation(field, "is required")
		return 0, false
	}
	if raw == nil {
		r.addViolation(field, "must not be null")
		return 0, false
	}
	f, ok := raw.(float64)
	if !ok {
		r.addViolation(field, "must be a number")
		return 0, false
	}
	return f, true
}
