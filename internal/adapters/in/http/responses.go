package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func success(ctx echo.Context, code int, message string, data any) error {
	return ctx.JSON(code, servers.Envelope{
		Status:  servers.StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func failure(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Envelope{
		Status:  servers.StatusError,
		Message: message,
	})
}

var errInvalidBody = errors.New("invalid request body")

// bindBody decodes the JSON body into dst and runs the echo validator.
func bindBody(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return errInvalidBody
	}
	return ctx.Validate(dst)
}

// handleError maps a use case error onto a response: validation and domain
// rule violations are 400, missing objects 404, anything else 500.
func (s *Server) handleError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return failure(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, inventory.ErrTypeMismatch),
		errors.Is(err, inventory.ErrQualityMismatch),
		errors.Is(err, inventory.ErrPackageDiscarded),
		errors.Is(err, inventory.ErrAlreadyPlaced):
		return failure(ctx, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return failure(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

// errorHandler renders errors raised outside the handlers, such as unknown
// routes and parameter binding failures, in the same envelope.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = failure(ctx, code, message)
}
