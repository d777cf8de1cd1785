package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightdoc/internal/domain"
	"freightdoc/internal/service"
)

// IngestionHandler handles extraction payload ingestion.
type IngestionHandler struct {
	ingestionService service.IngestionService
}

// NewIngestionHandler creates a new IngestionHandler.
func NewIngestionHandler(ingestionService service.IngestionService) *IngestionHandler {
	return &IngestionHandler{ingestionService: ingestionService}
}

// Ingest handles POST /api/v1/documents/ingest
// @Summary Ingest an extraction payload
// @Description Normalize a rate confirmation or bill of lading payload into records. Child rows that fail to store are reported as warnings.
// @Tags documents
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param request body IngestRequest true "Document and extraction payload"
// @Success 201 {object} Response{data=service.IngestResult} "Document ingested"
// @Failure 400 {object} ErrorResponseBody "Invalid request or unsupported document type"
// @Failure 409 {object} ErrorResponseBody "Document already ingested"
// @Failure 422 {object} ErrorResponseBody "Payload is not a JSON object"
// @Router /documents/ingest [post]
func (h *IngestionHandler) Ingest(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document_id, document_type and payload are required")
		return
	}
	docType := domain.DocumentType(req.DocumentType)
	if !domain.ValidDocumentTypes[docType] {
		HandleError(c, domain.ErrUnsupportedDocumentType)
		return
	}

	result, err := h.ingestionService.Ingest(c.Request.Context(), &service.IngestInput{
		OrganizationID: orgID,
		DocumentID:     req.DocumentID,
		DocumentType:   docType,
		LoadID:         req.LoadID,
		Payload:        req.Payload,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}
