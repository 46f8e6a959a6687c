package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"cropwise/pkg/middleware"
	"cropwise/pkg/yield"
	"cropwise/pkg/yield/controller"
	"cropwise/pkg/yield/service"
)

type yieldCtrl struct{ s service.YieldService }

func New(s service.YieldService) controller.YieldController { return &yieldCtrl{s} }

// predictRequest takes the numeric fields as any so a non-numeric value is
// reported with the other bad fields instead of failing the bind.
type predictRequest struct {
	yield.Input
	FarmArea        any `json:"farm_area"`
	PlantingDensity any `json:"planting_density"`
}

// number accepts JSON numbers and numeric strings; anything else is nil.
func number(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return &f
		}
	}
	return nil
}

func (h *yieldCtrl) Predict(c echo.Context) error {
	var req predictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	in := req.Input
	in.FarmArea = number(req.FarmArea)
	in.PlantingDensity = number(req.PlantingDensity)

	p, err := h.s.Predict(middleware.UserKey(c), in)
	if err != nil {
		var ve *yield.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": ve.Error(), "fields": ve.Fields})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *yieldCtrl) Latest(c echo.Context) error {
	p, err := h.s.Latest(middleware.UserKey(c))
	if errors.Is(err, service.ErrNoPrediction) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *yieldCtrl) History(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	list, err := h.s.History(middleware.UserKey(c), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}
