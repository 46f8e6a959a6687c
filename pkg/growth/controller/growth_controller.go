package controller

import "github.com/labstack/echo/v4"

type GrowthController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Delete(c echo.Context) error
	Summary(c echo.Context) error
}
