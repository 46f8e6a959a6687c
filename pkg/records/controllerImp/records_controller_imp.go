package controllerImp

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"cropwise/pkg/middleware"
	"cropwise/pkg/records"
	"cropwise/pkg/records/controller"
	svc "cropwise/pkg/records/service"
	"cropwise/pkg/validate"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type recordsCtrl struct{ s svc.RecordsService }

func New(s svc.RecordsService) controller.RecordsController { return &recordsCtrl{s} }

func fail(c echo.Context, err error) error {
	var ve *validate.Error
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error(), "fields": ve.Fields})
	case errors.Is(err, svc.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}

func badJSON(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
}

func (h *recordsCtrl) CreateRecord(c echo.Context) error {
	var in svc.NewRecord
	if err := c.Bind(&in); err != nil {
		return badJSON(c)
	}
	out, err := h.s.AddRecord(middleware.UserKey(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *recordsCtrl) PatchRecord(c echo.Context) error {
	var in svc.RecordPatch
	if err := c.Bind(&in); err != nil {
		return badJSON(c)
	}
	out, err := h.s.PatchRecord(middleware.UserKey(c), c.Param("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *recordsCtrl) DeleteRecord(c echo.Context) error {
	if err := h.s.DeleteRecord(middleware.UserKey(c), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *recordsCtrl) ListRecords(c echo.Context) error {
	var f records.Filter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid filter"})
	}
	list, err := h.s.ListRecords(middleware.UserKey(c), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *recordsCtrl) CreateActivity(c echo.Context) error {
	var in svc.NewActivity
	if err := c.Bind(&in); err != nil {
		return badJSON(c)
	}
	out, err := h.s.AddActivity(middleware.UserKey(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *recordsCtrl) DeleteActivity(c echo.Context) error {
	if err := h.s.DeleteActivity(middleware.UserKey(c), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *recordsCtrl) ListActivities(c echo.Context) error {
	list, err := h.s.ListActivities(middleware.UserKey(c), c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *recordsCtrl) CreateProduction(c echo.Context) error {
	var in svc.NewProduction
	if err := c.Bind(&in); err != nil {
		return badJSON(c)
	}
	out, err := h.s.AddProduction(middleware.UserKey(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *recordsCtrl) DeleteProduction(c echo.Context) error {
	if err := h.s.DeleteProduction(middleware.UserKey(c), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *recordsCtrl) ListProduction(c echo.Context) error {
	list, err := h.s.ListProduction(middleware.UserKey(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *recordsCtrl) ProductionByCrop(c echo.Context) error {
	out, err := h.s.ProductionByCrop(middleware.UserKey(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *recordsCtrl) CreateInventory(c echo.Context) error {
	var in svc.NewInventoryItem
	if err := c.Bind(&in); err != nil {
		return badJSON(c)
	}
	out, err := h.s.AddInventory(middleware.UserKey(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *recordsCtrl) PatchInventory(c echo.Context) error {
	var in svc.InventoryPatch
	if err := c.Bind(&in); err != nil {
		return badJSON(c)
	}
	out, err := h.s.PatchInventory(middleware.UserKey(c), c.Param("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *recordsCtrl) DeleteInventory(c echo.Context) error {
	if err := h.s.DeleteInventory(middleware.UserKey(c), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *recordsCtrl) ListInventory(c echo.Context) error {
	list, err := h.s.ListInventory(middleware.UserKey(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *recordsCtrl) Summary(c echo.Context) error {
	out, err := h.s.Summary(middleware.UserKey(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *recordsCtrl) Series(c echo.Context) error {
	months, _ := strconv.Atoi(c.QueryParam("months"))
	if months > 24 {
		months = 24
	}
	out, err := h.s.Series(middleware.UserKey(c), months)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *recordsCtrl) Export(c echo.Context) error {
	var f records.Filter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid filter"})
	}
	name := fmt.Sprintf("farm-records-%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	c.Response().Header().Set(echo.HeaderContentType, xlsxMIME)
	c.Response().WriteHeader(http.StatusOK)
	if err := h.s.Export(middleware.UserKey(c), f, c.Response()); err != nil {
		log.Printf("[records] export: %v", err)
		return err
	}
	return nil
}
