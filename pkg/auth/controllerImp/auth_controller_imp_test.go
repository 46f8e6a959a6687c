package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwise/pkg/middleware"
)

func TestSignInThenWhoAmI(t *testing.T) {
	h := NewAuthController()
	e := echo.New()
	e.POST("/auth/signin", h.SignIn)
	e.POST("/auth/signout", h.SignOut)
	e.GET("/api/whoami", h.WhoAmI, middleware.RequireSession())

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"email":" mary.w@farm.co.ke "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "mary.w@farm.co.ke", cookies[0].Value)

	req = httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.JSONEq(t, `{"email":"mary.w@farm.co.ke","email_key":"mary_w@farm_co_ke"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}
