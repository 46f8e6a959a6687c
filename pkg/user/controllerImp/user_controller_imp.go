package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropwise/pkg/middleware"
	"cropwise/pkg/user/controller"
	"cropwise/pkg/user/service"
	"cropwise/pkg/validate"
)

type userCtrl struct{ s service.UserService }

func New(s service.UserService) controller.UserController { return &userCtrl{s} }

func session(c echo.Context) middleware.Session {
	s, _ := middleware.FromContext(c)
	return s
}

func (h *userCtrl) Get(c echo.Context) error {
	p, err := h.s.Get(session(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *userCtrl) Save(c echo.Context) error {
	var in service.ProfileInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	p, err := h.s.Save(session(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *userCtrl) SetTheme(c echo.Context) error {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := h.s.SetTheme(session(c), body.Theme); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusAccepted, echo.Map{"theme": body.Theme})
}

func fail(c echo.Context, err error) error {
	var ve *validate.Error
	if errors.As(err, &ve) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": ve.Error(), "fields": ve.Fields})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
