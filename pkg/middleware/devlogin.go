package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const DevEmail = "farmer@cropwise.dev"

// DevLogin fills in an identity for local use: ?email= wins, else the default
// dev farmer. It only acts when no header or cookie is present, so it must run
// before RequireSession.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(HeaderEmail) != "" {
				return next(c)
			}
			if ck, err := c.Cookie(CookieEmail); err == nil && ck.Value != "" {
				return next(c)
			}
			email := c.QueryParam("email")
			if email == "" {
				email = DevEmail
			}
			c.SetCookie(&http.Cookie{Name: CookieEmail, Value: email, Path: "/"})
			c.Request().Header.Set(HeaderEmail, email)
			return next(c)
		}
	}
}
