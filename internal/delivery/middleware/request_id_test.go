package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "accounts/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string, logs *bytes.Buffer) (*httptest.ResponseRecorder, string) {
	t.Helper()

	m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(logs, nil)))

	var seen string
	next := func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLogger(c.Request().Context()).Info("inside handler")

		return c.NoContent(http.StatusNoContent)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, m.Process(next)(e.NewContext(req, rec)))

	return rec, seen
}

func TestRequestIDMiddleware_UsesClientHeader(t *testing.T) {
	var logs bytes.Buffer
	rec, seen := serveWithRequestID(t, "client-id", &logs)

	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, logs.String(), `"request_id":"client-id"`)
}

func TestRequestIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	var logs bytes.Buffer
	rec, seen := serveWithRequestID(t, "", &logs)

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesOversizedHeader(t *testing.T) {
	var logs bytes.Buffer
	_, seen := serveWithRequestID(t, strings.Repeat("x", maxRequestIDLength+1), &logs)

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}
