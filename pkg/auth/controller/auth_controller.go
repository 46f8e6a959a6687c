package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	SignIn(c echo.Context) error
	SignOut(c echo.Context) error
	WhoAmI(c echo.Context) error
}
