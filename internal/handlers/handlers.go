// Package handlers exposes the services over a REST-like HTTP API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

// errorResponse is the JSON error body returned by every endpoint.
type errorResponse struct {
	Error  string            `json:"error"`
	Code   errors.ErrorCode  `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError maps an application error to an HTTP response. Storage details
// never leak to the caller: IO and internal errors return a generic message.
func writeError(c echo.Context, err error) error {
	code := errors.CodeOf(err)

	status := http.StatusInternalServerError
	message := err.Error()
	switch code {
	case errors.ErrCodeValidation, errors.ErrCodeBadRequest:
		status = http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		status = http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		status = http.StatusForbidden
	case errors.ErrCodeReadOnly:
		status = http.StatusForbidden
		message = "read-only mode: write operations are disabled in this deployment"
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidState:
		status = http.StatusConflict
	case errors.ErrCodeIO, errors.ErrCodeInternalError:
		message = "internal error"
	}

	return c.JSON(status, errorResponse{
		Error:  message,
		Code:   code,
		Fields: errors.FieldsOf(err),
	})
}

// deleteResponse reports the outcome of an idempotent delete.
type deleteResponse struct {
	Deleted bool `json:"deleted"`
}
