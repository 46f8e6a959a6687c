package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	HeaderEmail = "X-User-Email"
	CookieEmail = "CW_EMAIL"
	ctxSession  = "session"
)

// Session is the signed-in user for one request.
type Session struct {
	Email    string `json:"email"`
	EmailKey string `json:"email_key"`
}

// EmailKey maps an email to its storage key: every "." becomes "_".
func EmailKey(email string) string {
	return strings.ReplaceAll(strings.TrimSpace(email), ".", "_")
}

func NewSession(email string) Session {
	email = strings.TrimSpace(email)
	return Session{Email: email, EmailKey: EmailKey(email)}
}

// RequireSession resolves the session from the X-User-Email header, falling
// back to the CW_EMAIL cookie. Requests with neither get 401.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := c.Request().Header.Get(HeaderEmail)
			if email == "" {
				if ck, err := c.Cookie(CookieEmail); err == nil {
					email = ck.Value
				}
			}
			if strings.TrimSpace(email) == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "sign-in required: missing user email"})
			}
			c.Set(ctxSession, NewSession(email))
			return next(c)
		}
	}
}

func FromContext(c echo.Context) (Session, bool) {
	s, ok := c.Get(ctxSession).(Session)
	return s, ok
}

// UserKey is the storage key of the request's session, "" when absent.
func UserKey(c echo.Context) string {
	s, _ := FromContext(c)
	return s.EmailKey
}
