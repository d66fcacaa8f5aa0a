package http

import (
	"strconv"

	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// bindPayload decodes the request body into a generic map so that command
// constructors can distinguish an absent field from an explicit null.
func bindPayload(c echo.Context) (map[string]any, error) {
	payload := make(map[string]any)
	if err := c.Bind(&payload); err != nil {
		return nil, errs.NewBadRequestErrorWithCause("Invalid request body", err)
	}

	return payload, nil
}

// pathID parses a numeric path parameter. Range checks live in the command
// and query constructors, only the integer parse happens here.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, errs.NewValidationError([]errs.FieldViolation{
			{Field: name, Message: "must be an integer"},
		})
	}

	return id, nil
}
