package controller

import "github.com/labstack/echo/v4"

type UserController interface {
	Get(c echo.Context) error
	Save(c echo.Context) error
	SetTheme(c echo.Context) error
}
