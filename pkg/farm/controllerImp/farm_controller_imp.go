package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropwise/entities"
	"cropwise/pkg/farm/controller"
	"cropwise/pkg/farm/service"
	"cropwise/pkg/middleware"
)

type farmCtrl struct{ s service.FarmService }

func New(s service.FarmService) controller.FarmController { return &farmCtrl{s} }

func (h *farmCtrl) Get(c echo.Context) error {
	f, err := h.s.Get(middleware.UserKey(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *farmCtrl) SetCrops(c echo.Context) error {
	var body struct {
		Crops []entities.Crop `json:"crops"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	for _, cr := range body.Crops {
		if cr.Name == "" || cr.Health < 0 || cr.Health > 100 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "each crop needs a name and health in 0..100"})
		}
	}
	f, err := h.s.SetCrops(middleware.UserKey(c), body.Crops)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *farmCtrl) SetPrices(c echo.Context) error {
	var body map[string]float64
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	f, err := h.s.SetPrices(middleware.UserKey(c), body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *farmCtrl) Recalculate(c echo.Context) error {
	f, m, err := h.s.Recalculate(middleware.UserKey(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"farm": f, "skipped": m.Skipped})
}
