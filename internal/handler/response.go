package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"freightdoc/internal/domain"
	"freightdoc/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var (
		mappingErr    *domain.MappingError
		incompleteErr *domain.IncompleteRecordError
		lookupErr     *domain.LookupFailure
	)

	switch {
	case errors.Is(err, domain.ErrRateConfirmationNotFound):
		return http.StatusNotFound, "RATE_CONFIRMATION_NOT_FOUND", "rate confirmation not found"
	case errors.Is(err, domain.ErrBillOfLadingNotFound):
		return http.StatusNotFound, "BILL_OF_LADING_NOT_FOUND", "bill of lading not found"
	case errors.Is(err, domain.ErrLoadNotFound):
		return http.StatusNotFound, "LOAD_NOT_FOUND", "linked load not found"
	case errors.Is(err, domain.ErrDetentionRecordNotFound):
		return http.StatusNotFound, "DETENTION_RECORD_NOT_FOUND", "detention record not found"
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound, "INVOICE_NOT_FOUND", "detention invoice not found"
	case errors.Is(err, domain.ErrVerdictNotFound):
		return http.StatusNotFound, "VERDICT_NOT_FOUND", "no validation verdict for this bill of lading"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return http.StatusConflict, "INVALID_STATUS_TRANSITION", "the record is not in a state that allows this action"
	case errors.Is(err, domain.ErrDocumentAlreadyIngested):
		return http.StatusConflict, "DOCUMENT_ALREADY_INGESTED", "document has already been ingested"
	case errors.Is(err, domain.ErrUnsupportedDocumentType):
		return http.StatusBadRequest, "UNSUPPORTED_DOCUMENT_TYPE", "unsupported document type; allowed: rate_con, bol"
	case errors.Is(err, domain.ErrNoLinkedLoad):
		return http.StatusConflict, "NO_LINKED_LOAD", "bill of lading is not linked to a load"
	case errors.Is(err, domain.ErrMissingRecipient):
		return http.StatusUnprocessableEntity, "MISSING_RECIPIENT", "invoice has no broker email"
	case errors.As(err, &mappingErr):
		return http.StatusUnprocessableEntity, "MAPPING_ERROR", mappingErr.Error()
	case errors.As(err, &incompleteErr):
		return http.StatusUnprocessableEntity, "INCOMPLETE_RECORD", incompleteErr.Error()
	case errors.As(err, &lookupErr):
		return http.StatusBadGateway, "LOOKUP_FAILED", "a supporting record could not be read"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Error().Err(err).Interface("request_id", requestID).Msg("internal error")
	}
	RespondError(c, status, code, msg)
}

// organizationID reads the organization scope. Returns false if it is
// missing (error response already written).
func organizationID(c *gin.Context) (uuid.UUID, bool) {
	orgID, err := middleware.GetOrganizationID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_ORGANIZATION", "missing organization context")
		return uuid.Nil, false
	}
	return orgID, true
}

// pathID parses a UUID path parameter. Returns false if it is invalid (error
// response already written).
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
