package handler

import (
	"github.com/gin-gonic/gin"

	"freightdoc/internal/service"
)

// BillOfLadingHandler handles BOL endpoints.
type BillOfLadingHandler struct {
	bolService service.BillOfLadingService
}

// NewBillOfLadingHandler creates a new BillOfLadingHandler.
func NewBillOfLadingHandler(bolService service.BillOfLadingService) *BillOfLadingHandler {
	return &BillOfLadingHandler{bolService: bolService}
}

// GetByID handles GET /api/v1/bills-of-lading/:id
// @Summary Get bill of lading
// @Tags bills-of-lading
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Bill of lading ID (UUID)"
// @Success 200 {object} Response{data=domain.BillOfLadingSet} "Bill of lading with line items and references"
// @Failure 404 {object} ErrorResponseBody "Bill of lading not found"
// @Router /bills-of-lading/{id} [get]
func (h *BillOfLadingHandler) GetByID(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	set, err := h.bolService.Get(c.Request.Context(), orgID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, set)
}

// Validate handles POST /api/v1/bills-of-lading/:id/validate
// @Summary Re-validate bill of lading
// @Description Recompute the verdict against the linked load and replace the stored one
// @Tags bills-of-lading
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Bill of lading ID (UUID)"
// @Success 200 {object} Response{data=domain.ValidationVerdict} "Verdict"
// @Failure 404 {object} ErrorResponseBody "Bill of lading or load not found"
// @Failure 409 {object} ErrorResponseBody "Bill of lading is not linked to a load"
// @Router /bills-of-lading/{id}/validate [post]
func (h *BillOfLadingHandler) Validate(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	verdict, err := h.bolService.Validate(c.Request.Context(), orgID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, verdict)
}

// GetVerdict handles GET /api/v1/bills-of-lading/:id/verdict
// @Summary Get validation verdict
// @Tags bills-of-lading
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Bill of lading ID (UUID)"
// @Success 200 {object} Response{data=domain.ValidationVerdict} "Verdict"
// @Failure 404 {object} ErrorResponseBody "No verdict recorded"
// @Router /bills-of-lading/{id}/verdict [get]
func (h *BillOfLadingHandler) GetVerdict(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	verdict, err := h.bolService.GetVerdict(c.Request.Context(), orgID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, verdict)
}
