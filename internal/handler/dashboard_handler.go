package handler

import (
	"github.com/gin-gonic/gin"

	"creditwatch/internal/service"
)

// DashboardHandler handles the dashboard endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles GET /api/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.dashboardService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, data)
}
