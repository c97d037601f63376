package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creditwatch/internal/domain"
	"creditwatch/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	maxUploadMB    int64
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, maxUploadMB int64) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, maxUploadMB: maxUploadMB}
}

// List handles GET /api/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	clientID, ok := queryUUID(c, "client_id")
	if !ok {
		return
	}
	from, ok := queryDate(c, "start_date")
	if !ok {
		return
	}
	to, ok := queryDate(c, "end_date")
	if !ok {
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), service.ListInvoicesInput{
		ClientID: clientID,
		Status:   c.Query("status"),
		From:     from,
		To:       to,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoices)
}

// Get handles GET /api/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoice)
}

// Create handles POST /api/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, invoice)
}

// Import handles POST /api/invoices/import
func (h *InvoiceHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart field 'file' is required")
		return
	}
	if fileHeader.Size > h.maxUploadMB*1024*1024 {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	autoCreate := c.Query("auto_create_clients") == "true"
	result, err := h.invoiceService.Import(c.Request.Context(), f, fileHeader.Filename, autoCreate)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Delete handles DELETE /api/invoices/:id (admin only).
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
