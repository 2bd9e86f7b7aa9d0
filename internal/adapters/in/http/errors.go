package http

import (
	"errors"
	"net/http"

	"deliveryledger/internal/generated/servers"
	"deliveryledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a domain error to its HTTP status and writes the JSON error
// body. State conflicts share 409 so the client can always retry a read to
// learn the winning state.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrDeactivated):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrLocked),
		errors.Is(err, errs.ErrAlreadyLocked),
		errors.Is(err, errs.ErrDuplicatePod),
		errors.Is(err, errs.ErrAlreadyCollected),
		errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Do not leak internals on unexpected failures.
		message = "Internal server error"
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
