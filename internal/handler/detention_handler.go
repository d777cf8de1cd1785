package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightdoc/internal/domain"
	"freightdoc/internal/service"
)

// DetentionHandler handles detention billing endpoints.
type DetentionHandler struct {
	detentionService service.DetentionService
}

// NewDetentionHandler creates a new DetentionHandler.
func NewDetentionHandler(detentionService service.DetentionService) *DetentionHandler {
	return &DetentionHandler{detentionService: detentionService}
}

// GenerateInvoice handles POST /api/v1/detention/invoices
// @Summary Generate detention invoice
// @Description Price a detention record. Missing rate and facility details fall back to the load, its stops and configured defaults.
// @Tags detention
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param request body GenerateInvoiceRequest true "Detention record and optional overrides"
// @Success 201 {object} Response{data=InvoiceSummary} "Invoice created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Detention record not found"
// @Failure 422 {object} ErrorResponseBody "Detention record has no start or end time"
// @Router /detention/invoices [post]
func (h *DetentionHandler) GenerateInvoice(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "detention_record_id is required")
		return
	}

	inv, err := h.detentionService.GenerateInvoice(c.Request.Context(), &service.GenerateInvoiceInput{
		OrganizationID:    orgID,
		DetentionRecordID: req.DetentionRecordID,
		StopID:            req.StopID,
		Details:           req.InvoiceDetails,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, summarize(inv))
}

// SendInvoice handles POST /api/v1/detention/invoices/:id/send
// @Summary Send detention invoice
// @Description Email an approved invoice to the broker with a link to the evidence photo
// @Tags detention
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=domain.DetentionInvoice} "Invoice sent"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 409 {object} ErrorResponseBody "Invoice already sent"
// @Failure 422 {object} ErrorResponseBody "Invoice has no broker email"
// @Router /detention/invoices/{id}/send [post]
func (h *DetentionHandler) SendInvoice(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	inv, err := h.detentionService.SendInvoice(c.Request.Context(), orgID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// ExportRegister handles POST /api/v1/detention/invoices/export
// @Summary Export invoice register
// @Description Write every invoice of the organization to an XLSX file and return a download link
// @Tags detention
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Success 200 {object} Response{data=service.RegisterExport} "Register exported"
// @Failure 500 {object} ErrorResponseBody "Export failed"
// @Router /detention/invoices/export [post]
func (h *DetentionHandler) ExportRegister(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	out, err := h.detentionService.ExportRegister(c.Request.Context(), orgID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, out)
}

func summarize(inv *domain.DetentionInvoice) InvoiceSummary {
	return InvoiceSummary{
		InvoiceID:       inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		TotalDue:        inv.TotalDue,
		RatePerHour:     inv.RatePerHour,
		TotalHours:      inv.TotalHours,
		PayableHours:    inv.PayableHours,
		FacilityName:    inv.FacilityName,
		FacilityAddress: inv.FacilityAddress,
		Currency:        inv.Currency,
		Status:          inv.Status,
	}
}
