package handler

import (
	"github.com/gin-gonic/gin"

	"freightdoc/internal/service"
)

// RateConfirmationHandler handles rate confirmation review endpoints.
type RateConfirmationHandler struct {
	rcService service.RateConfirmationService
}

// NewRateConfirmationHandler creates a new RateConfirmationHandler.
func NewRateConfirmationHandler(rcService service.RateConfirmationService) *RateConfirmationHandler {
	return &RateConfirmationHandler{rcService: rcService}
}

// GetByID handles GET /api/v1/rate-confirmations/:id
// @Summary Get rate confirmation
// @Description Get a rate confirmation with stops, references, charges, risk clauses and dispatch instructions
// @Tags rate-confirmations
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Rate confirmation ID (UUID)"
// @Success 200 {object} Response{data=domain.RateConfirmationSet} "Rate confirmation"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Rate confirmation not found"
// @Router /rate-confirmations/{id} [get]
func (h *RateConfirmationHandler) GetByID(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	set, err := h.rcService.Get(c.Request.Context(), orgID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, set)
}

// ListNotifications handles GET /api/v1/rate-confirmations/:id/notifications
// @Summary List scheduled notifications
// @Description List the clause notifications scheduled for a rate confirmation
// @Tags rate-confirmations
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Rate confirmation ID (UUID)"
// @Success 200 {object} Response{data=[]domain.ScheduledNotification} "Scheduled notifications"
// @Failure 404 {object} ErrorResponseBody "Rate confirmation not found"
// @Router /rate-confirmations/{id}/notifications [get]
func (h *RateConfirmationHandler) ListNotifications(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	notifications, err := h.rcService.ListNotifications(c.Request.Context(), orgID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, notifications)
}

// Accept handles POST /api/v1/rate-confirmations/:id/accept
// @Summary Accept rate confirmation
// @Tags rate-confirmations
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Rate confirmation ID (UUID)"
// @Success 200 {object} Response{data=domain.RateConfirmation} "Accepted"
// @Failure 404 {object} ErrorResponseBody "Rate confirmation not found"
// @Failure 409 {object} ErrorResponseBody "Rate confirmation is not under review"
// @Router /rate-confirmations/{id}/accept [post]
func (h *RateConfirmationHandler) Accept(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rc, err := h.rcService.Accept(c.Request.Context(), orgID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rc)
}

// Reject handles POST /api/v1/rate-confirmations/:id/reject
// @Summary Reject rate confirmation
// @Tags rate-confirmations
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Rate confirmation ID (UUID)"
// @Success 200 {object} Response{data=domain.RateConfirmation} "Rejected"
// @Failure 404 {object} ErrorResponseBody "Rate confirmation not found"
// @Failure 409 {object} ErrorResponseBody "Rate confirmation is not under review"
// @Router /rate-confirmations/{id}/reject [post]
func (h *RateConfirmationHandler) Reject(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rc, err := h.rcService.Reject(c.Request.Context(), orgID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rc)
}
