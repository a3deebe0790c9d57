package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/users", nil), rec)

	m.HandleHTTPError(err, c)

	return rec, logs.String()
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	err := errors.WithStack(domainerrors.NewValidationError([]domainerrors.Violation{
		{Field: "email", Message: "Please include a valid email", Value: "bad"},
		{Field: "password", Message: "Please enter a password with 6 or more characters"},
	}))

	rec, _ := handle(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[
		{"msg":"Please include a valid email","param":"email","value":"bad","location":"body"},
		{"msg":"Please enter a password with 6 or more characters","param":"password","location":"body"}
	]}`, rec.Body.String())
}

func TestErrorMiddleware_InvalidCredentials(t *testing.T) {
	rec, _ := handle(t, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":{"message":"Invalid Login"}}`, rec.Body.String())
}

func TestErrorMiddleware_ClientAppError(t *testing.T) {
	rec, _ := handle(t, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"User already exists"}]}`, rec.Body.String())
}

func TestErrorMiddleware_ServerErrorsAreOpaque(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "store unavailable", err: domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user")},
		{name: "token issuance", err: domainerrors.ErrTokenIssuanceFailed.WithDetails("connection refused")},
		{name: "unknown error", err: errors.New("connection refused")},
		{name: "echo 500", err: echo.NewHTTPError(http.StatusInternalServerError, "connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, logs := handle(t, tt.err)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"errors":[{"msg":"Server error"}]}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "connection refused")
			assert.Contains(t, logs, "Request failed")
		})
	}
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, logs := handle(t, echo.ErrStatusRequestEntityTooLarge)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Request Entity Too Large"}]}`, rec.Body.String())
	assert.Empty(t, logs)
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/users", nil), rec)
	_ = c.String(http.StatusOK, "done")

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
