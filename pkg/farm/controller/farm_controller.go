package controller

import "github.com/labstack/echo/v4"

type FarmController interface {
	Get(c echo.Context) error
	SetCrops(c echo.Context) error
	SetPrices(c echo.Context) error
	Recalculate(c echo.Context) error
}
