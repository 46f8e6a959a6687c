package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropwise/pkg/market"
	"cropwise/pkg/market/controller"
	"cropwise/pkg/market/service"
)

type marketCtrl struct{ s service.MarketService }

func New(s service.MarketService) controller.MarketController { return &marketCtrl{s} }

func (h *marketCtrl) Prices(c echo.Context) error {
	list, err := h.s.Prices(c.QueryParam("crop"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *marketCtrl) Trends(c echo.Context) error {
	t, err := h.s.Trends()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *marketCtrl) Import(c echo.Context) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.URL) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url required"})
	}
	res, err := h.s.Import(c.Request().Context(), strings.TrimSpace(body.URL))
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, res)
	case errors.Is(err, market.ErrDomainNotAllowed):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, market.ErrNoRows):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, market.ErrFetch), errors.Is(err, market.ErrPageTooLarge), errors.Is(err, market.ErrUnsupportedType):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}
