package controller

import "github.com/labstack/echo/v4"

type WeatherController interface {
	Overview(c echo.Context) error
	Current(c echo.Context) error
	Last(c echo.Context) error
	Advice(c echo.Context) error
	Daily(c echo.Context) error
}
