package handlers

import (
	"net/http"

	"motofix/internal/adapter/http/dto/response"
	"motofix/internal/adapter/http/middleware"
	"motofix/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the caller's notification inbox.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(items))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), middleware.CallerID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
