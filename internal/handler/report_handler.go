package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"creditwatch/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) filter(c *gin.Context) (service.ReportFilter, bool) {
	clientID, ok := queryUUID(c, "client_id")
	if !ok {
		return service.ReportFilter{}, false
	}
	from, ok := queryDate(c, "start_date")
	if !ok {
		return service.ReportFilter{}, false
	}
	to, ok := queryDate(c, "end_date")
	if !ok {
		return service.ReportFilter{}, false
	}
	return service.ReportFilter{ClientID: clientID, From: from, To: to}, true
}

// Outstanding handles GET /api/reports/outstanding
func (h *ReportHandler) Outstanding(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.Outstanding(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// Overdue handles GET /api/reports/overdue
func (h *ReportHandler) Overdue(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.Overdue(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// Payments handles GET /api/reports/payments
func (h *ReportHandler) Payments(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.Payments(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// Export handles GET /api/reports/export
func (h *ReportHandler) Export(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}
	reportType := c.DefaultQuery("report_type", "outstanding")

	var buf bytes.Buffer
	filename, err := h.reportService.Export(c.Request.Context(), reportType, filter, &buf)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
