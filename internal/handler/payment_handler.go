package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creditwatch/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List handles GET /api/payments
func (h *PaymentHandler) List(c *gin.Context) {
	invoiceID, ok := queryUUID(c, "invoice_id")
	if !ok {
		return
	}
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

	payments, err := h.paymentService.List(c.Request.Context(), service.ListPaymentsInput{
		InvoiceID: invoiceID,
		ClientID:  clientID,
		From:      from,
		To:        to,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, payments)
}

// Record handles POST /api/payments
func (h *PaymentHandler) Record(c *gin.Context) {
	var input service.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, payment)
}

// MarkPaid handles POST /api/invoices/:id/mark-paid
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.MarkInvoicePaid(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, payment)
}

// Delete handles DELETE /api/payments/:id (admin only).
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
