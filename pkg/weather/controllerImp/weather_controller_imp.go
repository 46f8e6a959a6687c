package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropwise/pkg/middleware"
	"cropwise/pkg/weather"
	"cropwise/pkg/weather/controller"
	"cropwise/pkg/weather/service"
)

type weatherCtrl struct{ s service.WeatherService }

func New(s service.WeatherService) controller.WeatherController { return &weatherCtrl{s} }

func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, weather.ErrNotConfigured):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
	case errors.Is(err, weather.ErrProvider), errors.Is(err, weather.ErrEmptyForecast):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNoSnapshot):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func (h *weatherCtrl) Overview(c echo.Context) error {
	ov, err := h.s.Overview(c.Request().Context(), middleware.UserKey(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, ov)
}

func (h *weatherCtrl) Current(c echo.Context) error {
	snap, err := h.s.Current(c.Request().Context(), middleware.UserKey(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *weatherCtrl) Last(c echo.Context) error {
	snap, err := h.s.Last(middleware.UserKey(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *weatherCtrl) Advice(c echo.Context) error {
	rep, err := h.s.Advice(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *weatherCtrl) Daily(c echo.Context) error {
	days, err := h.s.Daily(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"days": days})
}
