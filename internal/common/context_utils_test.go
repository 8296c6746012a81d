package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUUID(t *testing.T) {
	id, err := ValidateUUID(" 3f1c7d3e-8c1f-4c55-9d1e-2b9a0e6c1f00 ", "id")
	require.NoError(t, err)
	assert.Equal(t, "3f1c7d3e-8c1f-4c55-9d1e-2b9a0e6c1f00", id.String())

	_, err = ValidateUUID("", "id")
	assert.EqualError(t, err, "id is required")

	_, err = ValidateUUID("3f1c7d3e8c1f4c559d1e2b9a0e6c1f00", "id")
	assert.Error(t, err)

	_, err = ValidateUUID("3f1c7d3e-8c1f-4c55-9d1e-2b9a0e6c1fzz", "id")
	assert.Error(t, err)
}

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := RequestIDMiddleware()(func(c echo.Context) error {
		seen, _ = GetRequestIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Len(t, seen, 32)
	assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsInboundID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := RequestIDMiddleware()(func(c echo.Context) error {
		seen, _ = GetRequestIDFromContext(c.Request().Context())
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "abc-123", seen)
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	_, ok := GetRequestIDFromContext(context.Background())
	assert.False(t, ok)
}
