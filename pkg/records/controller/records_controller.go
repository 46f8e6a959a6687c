package controller

import "github.com/labstack/echo/v4"

type RecordsController interface {
	CreateRecord(c echo.Context) error
	PatchRecord(c echo.Context) error
	DeleteRecord(c echo.Context) error
	ListRecords(c echo.Context) error

	CreateActivity(c echo.Context) error
	DeleteActivity(c echo.Context) error
	ListActivities(c echo.Context) error

	CreateProduction(c echo.Context) error
	DeleteProduction(c echo.Context) error
	ListProduction(c echo.Context) error
	ProductionByCrop(c echo.Context) error

	CreateInventory(c echo.Context) error
	PatchInventory(c echo.Context) error
	DeleteInventory(c echo.Context) error
	ListInventory(c echo.Context) error

	Summary(c echo.Context) error
	Series(c echo.Context) error
	Export(c echo.Context) error
}
