package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creditwatch/internal/service"
)

// ReminderHandler handles payment reminder endpoints.
type ReminderHandler struct {
	reminderService service.ReminderService
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// Compose handles POST /api/clients/:id/reminders
func (h *ReminderHandler) Compose(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input service.ComposeReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	link, err := h.reminderService.Compose(c.Request.Context(), clientID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, link)
}

// Send handles POST /api/clients/:id/reminders/send
func (h *ReminderHandler) Send(c *gin.Context) {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input service.ComposeReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	link, err := h.reminderService.Send(c.Request.Context(), clientID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, link)
}
