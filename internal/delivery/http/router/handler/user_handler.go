// Package handler contains the HTTP handlers for the application.
package handler

import (
	"accounts/internal/delivery/http/response"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		uc: uc,
	}
}

// RegisterUser handles POST /api/users.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	input := new(usecase.RegisterUserInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, output.Token)
}

// Login handles PUT /api/users.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, output.Token)
}
