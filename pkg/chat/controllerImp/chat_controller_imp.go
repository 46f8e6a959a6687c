package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropwise/pkg/chat/controller"
	"cropwise/pkg/chat/service"
	"cropwise/pkg/middleware"
)

type chatCtrl struct{ s service.ChatService }

func New(s service.ChatService) controller.ChatController { return &chatCtrl{s} }

func (h *chatCtrl) Send(c echo.Context) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	ex, err := h.s.Send(middleware.UserKey(c), body.Text)
	if errors.Is(err, service.ErrEmptyMessage) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ex)
}

func (h *chatCtrl) History(c echo.Context) error {
	list, err := h.s.History(middleware.UserKey(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *chatCtrl) Clear(c echo.Context) error {
	if err := h.s.Clear(middleware.UserKey(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
