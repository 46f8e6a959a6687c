package controller

import "github.com/labstack/echo/v4"

type YieldController interface {
	Predict(c echo.Context) error
	Latest(c echo.Context) error
	History(c echo.Context) error
}
