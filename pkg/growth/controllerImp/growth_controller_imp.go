package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropwise/pkg/growth"
	"cropwise/pkg/growth/controller"
	"cropwise/pkg/growth/service"
	"cropwise/pkg/middleware"
	"cropwise/pkg/validate"
)

type growthCtrl struct{ s service.GrowthService }

func New(s service.GrowthService) controller.GrowthController { return &growthCtrl{s} }

func (h *growthCtrl) Create(c echo.Context) error {
	var in service.NewEntry
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	e, err := h.s.Add(middleware.UserKey(c), in)
	if err != nil {
		var ve *validate.Error
		if errors.As(err, &ve) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error(), "fields": ve.Fields})
		}
		if errors.Is(err, growth.ErrUnknownCrop) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *growthCtrl) List(c echo.Context) error {
	list, err := h.s.List(middleware.UserKey(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *growthCtrl) Delete(c echo.Context) error {
	err := h.s.Delete(middleware.UserKey(c), c.Param("id"))
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *growthCtrl) Summary(c echo.Context) error {
	out, err := h.s.Summary(middleware.UserKey(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
