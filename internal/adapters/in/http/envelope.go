package http

import (
	"errors"
	"net/http"

	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform wrapper returned by every endpoint. Successful
// responses always carry a data member (an empty object when the operation
// produced none); error responses omit it. Validation failures additionally
// carry the per-field violation list.
type Envelope struct {
	Status     string                `json:"status"`
	Message    string                `json:"message"`
	Data       any                   `json:"data,omitempty"`
	Errors     []errs.FieldViolation `json:"errors,omitempty"`
	StatusCode int                   `json:"status_code"`
}

// RespondSuccess wraps an operation result in the success envelope.
func RespondSuccess(c echo.Context, message string, data any) error {
	if data == nil {
		data = map[string]any{}
	}

	return c.JSON(http.StatusOK, Envelope{
		Status:     "success",
		Message:    message,
		Data:       data,
		StatusCode: http.StatusOK,
	})
}

// RespondError renders any failure into the error envelope. There is exactly
// one decision path per error kind; anything unrecognized falls back to a
// generic 500. Storage error text never reaches the caller, only the curated
// message for the kind.
func RespondError(c echo.Context, err error) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusUnprocessableEntity, Envelope{
			Status:     "error",
			Message:    "Validation failed",
			Errors:     validationErr.Violations,
			StatusCode: http.StatusUnprocessableEntity,
		})
	}

	var badRequestErr *errs.BadRequestError
	if errors.As(err, &badRequestErr) {
		return errorEnvelope(c, http.StatusBadRequest, badRequestErr.Message)
	}

	var notFoundErr *errs.NotFoundError
	if errors.As(err, &notFoundErr) {
		return errorEnvelope(c, http.StatusNotFound, notFoundErr.Error())
	}

	if errors.Is(err, errs.ErrConnectivity) {
		return errorEnvelope(c, http.StatusInternalServerError, "Failed to connect to the database")
	}

	if errors.Is(err, errs.ErrQueryFailed) {
		return errorEnvelope(c, http.StatusInternalServerError, "Database query failed")
	}

	return errorEnvelope(c, http.StatusInternalServerError, "Internal server error")
}

func errorEnvelope(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{
		Status:     "error",
		Message:    message,
		StatusCode: statusCode,
	})
}
