package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newVersionedEcho(vm *VersionMiddleware) *echo.Echo {
	e := echo.New()
	e.Use(vm.APIVersionResolver())
	v1 := vm.VersionRoute(e, "v1")
	v1.GET("/assets", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("api_version").(string))
	})
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("api_version").(string))
	})
	return e
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestVersionRoute_SetsHeaders(t *testing.T) {
	rec := serve(newVersionedEcho(NewVersionMiddleware()), "/v1/assets")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Body.String())
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
	assert.Equal(t, "Current stable API version", rec.Header().Get("X-API-Message"))
	assert.Empty(t, rec.Header().Get("X-API-Deprecated"))
}

func TestAPIVersionResolver_DefaultsUnversionedPaths(t *testing.T) {
	rec := serve(newVersionedEcho(NewVersionMiddleware()), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-API-Version"))
}

func TestAPIVersionResolver_RejectsUnknownVersion(t *testing.T) {
	rec := serve(newVersionedEcho(NewVersionMiddleware()), "/v2/assets")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsupported API version")
	assert.Contains(t, rec.Body.String(), `"supported_versions":"v1"`)
}

func TestVersionHeader_Deprecated(t *testing.T) {
	vm := NewVersionMiddleware()
	vm.Deprecate("v1", "Use v2", time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC))

	rec := serve(newVersionedEcho(vm), "/v1/assets")

	assert.Equal(t, "true", rec.Header().Get("X-API-Deprecated"))
	assert.Equal(t, "2027-01-31T00:00:00Z", rec.Header().Get("X-API-Sunset"))
	assert.Contains(t, rec.Header().Get("Warning"), "removed on 2027-01-31")
	assert.Equal(t, "Use v2", rec.Header().Get("X-API-Message"))
}

func TestExtractVersionFromPath(t *testing.T) {
	cases := map[string]string{
		"/v1":           "v1",
		"/v1/assets":    "v1",
		"/v12/assets":   "v12",
		"/v0/assets":    "",
		"/vendors":      "",
		"/v":            "",
		"/health":       "",
		"/v1x/anything": "",
	}
	for path, want := range cases {
		assert.Equal(t, want, extractVersionFromPath(path), path)
	}
}
