// Package middleware holds the HTTP delivery's error handling.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/delivery/http/response"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware maps errors returned by handlers to response bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// 5xx bodies never carry internal detail; the cause is logged instead.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationErrors(c, validationErr.Violations)

		return
	}

	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		_ = response.Message(c, domainerrors.ErrInvalidCredentials.HTTPCode(), domainerrors.ErrInvalidCredentials.Message())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logServerError(c, err, appErr.ErrorCode())
			_ = response.ServerError(c)

			return
		}

		_ = response.Errors(c, appErr.HTTPCode(), response.ErrorItem{Msg: appErr.Message()})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			m.logServerError(c, err, "HTTP_ERROR")
			_ = response.ServerError(c)

			return
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Errors(c, httpErr.Code, response.ErrorItem{Msg: message})

		return
	}

	m.logServerError(c, err, domainerrors.ErrInternalError.ErrorCode())
	_ = response.ServerError(c)
}

func (m *ErrorMiddleware) logServerError(c echo.Context, err error, code string) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
		slog.String("code", code),
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}
