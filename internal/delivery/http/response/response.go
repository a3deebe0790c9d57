// Package response renders the JSON bodies of the accounts API.
package response

import (
	"net/http"

	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// LocationBody marks a violation found in the request body.
const LocationBody = "body"

// ErrorItem is one entry of an error list.
type ErrorItem struct {
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Value    any    `json:"value,omitempty"`
	Location string `json:"location,omitempty"`
}

// ErrorList is the body of most failures: {"errors":[{...}]}.
type ErrorList struct {
	Errors []ErrorItem `json:"errors"`
}

// ErrorDetail is the single-message error object used by login failures.
type ErrorDetail struct {
	Message string `json:"message"`
}

// ErrorMessage is the body {"errors":{"message":"..."}}.
type ErrorMessage struct {
	Errors ErrorDetail `json:"errors"`
}

// TokenBody is the success body of register and login.
type TokenBody struct {
	Token string `json:"token"`
}

// Token writes 200 {"token": token}.
func Token(c echo.Context, token string) error {
	return c.JSON(http.StatusOK, TokenBody{Token: token})
}

// Errors writes an error list with the given status.
func Errors(c echo.Context, statusCode int, items ...ErrorItem) error {
	return c.JSON(statusCode, ErrorList{Errors: items})
}

// Message writes a single error message object with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorMessage{Errors: ErrorDetail{Message: message}})
}

// ValidationErrors writes 400 with one entry per violation, in order.
func ValidationErrors(c echo.Context, violations []domainerrors.Violation) error {
	items := make([]ErrorItem, 0, len(violations))
	for _, v := range violations {
		items = append(items, ErrorItem{
			Msg:      v.Message,
			Param:    v.Field,
			Value:    v.Value,
			Location: LocationBody,
		})
	}

	return Errors(c, http.StatusBadRequest, items...)
}

// BindingError writes 400 for a body that could not be decoded.
func BindingError(c echo.Context) error {
	return Errors(c, http.StatusBadRequest, ErrorItem{Msg: "Invalid request body"})
}

// ServerError writes the opaque 500 body.
func ServerError(c echo.Context) error {
	return Errors(c, http.StatusInternalServerError, ErrorItem{Msg: domainerrors.ErrInternalError.Message()})
}
