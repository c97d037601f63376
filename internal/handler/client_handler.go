package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creditwatch/internal/service"
)

// ClientHandler handles client endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	summaries, err := h.clientService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summaries)
}

// Get handles GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	summary, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Create handles POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var input service.CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, client)
}

// Update handles PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var input service.UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, client)
}

// Delete handles DELETE /api/clients/:id (admin only).
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
