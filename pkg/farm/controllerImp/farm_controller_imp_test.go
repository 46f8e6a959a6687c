package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwise/database"
	"cropwise/entities"
	"cropwise/pkg/farm/repositoryImp"
	"cropwise/pkg/farm/serviceImp"
	"cropwise/pkg/middleware"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	h := New(serviceImp.NewFarmService(repositoryImp.New(db)))

	e := echo.New()
	g := e.Group("/api/farm", middleware.RequireSession())
	g.GET("", h.Get)
	g.PUT("/crops", h.SetCrops)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderEmail, "grower@example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSetCrops(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPut, "/api/farm/crops", `{"crops":[
		{"name":"Kale","planted_date":"2025-03-01","expected_harvest_date":"2025-05-01","area":"0.5 acres","health":95}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var f entities.Farm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	require.Len(t, f.Crops, 1)
	assert.Equal(t, 95, f.Crops[0].Health)
}

func TestSetCropsRejectsBadCrop(t *testing.T) {
	e := newServer(t)

	for _, body := range []string{
		`{"crops":[{"name":"Kale","health":101}]}`,
		`{"crops":[{"name":"Kale","health":-1}]}`,
		`{"crops":[{"health":50}]}`,
	} {
		rec := do(e, http.MethodPut, "/api/farm/crops", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	rec := do(e, http.MethodGet, "/api/farm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var f entities.Farm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Len(t, f.Crops, 2)
}
