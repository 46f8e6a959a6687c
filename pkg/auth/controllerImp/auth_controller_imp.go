package controllerImp

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"cropwise/pkg/auth/controller"
	"cropwise/pkg/middleware"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

// SignIn records the email in the session cookie. Credentials are checked
// by the identity provider in front of this service.
func (h *authCtrl) SignIn(c echo.Context) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(body.Email))
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid email", "fields": []string{"email"}})
	}
	c.SetCookie(&http.Cookie{Name: middleware.CookieEmail, Value: addr.Address, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, middleware.NewSession(addr.Address))
}

func (h *authCtrl) SignOut(c echo.Context) error {
	c.SetCookie(&http.Cookie{Name: middleware.CookieEmail, Value: "", Path: "/", MaxAge: -1})
	return c.NoContent(http.StatusNoContent)
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	s, ok := middleware.FromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session"})
	}
	return c.JSON(http.StatusOK, s)
}
