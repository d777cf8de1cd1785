package handler

import (
	"encoding/json"

	"github.com/google/uuid"

	"freightdoc/internal/domain"
	"freightdoc/internal/service"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// IngestRequest represents the document ingestion request body.
type IngestRequest struct {
	DocumentID   uuid.UUID       `json:"document_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	DocumentType string          `json:"document_type" binding:"required" example:"rate_con"`
	LoadID       *uuid.UUID      `json:"load_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Payload      json.RawMessage `json:"payload" binding:"required" swaggertype:"object"`
}

// GenerateInvoiceRequest represents the detention invoice request body.
type GenerateInvoiceRequest struct {
	DetentionRecordID uuid.UUID               `json:"detention_record_id" binding:"required" example:"770e8400-e29b-41d4-a716-446655440002"`
	StopID            *uuid.UUID              `json:"stop_id" example:"880e8400-e29b-41d4-a716-446655440003"`
	InvoiceDetails    *service.InvoiceDetails `json:"invoice_details"`
}

// --- Response Types ---

// InvoiceSummary is the priced result returned when an invoice is generated.
type InvoiceSummary struct {
	InvoiceID       uuid.UUID            `json:"invoice_id" example:"990e8400-e29b-41d4-a716-446655440004"`
	InvoiceNumber   string               `json:"invoice_number" example:"DET-20250304-1741075200000"`
	TotalDue        float64              `json:"total_due" example:"225"`
	RatePerHour     float64              `json:"rate_per_hour" example:"75"`
	TotalHours      float64              `json:"total_hours" example:"5"`
	PayableHours    float64              `json:"payable_hours" example:"3"`
	FacilityName    string               `json:"facility_name" example:"Cold Storage A"`
	FacilityAddress string               `json:"facility_address" example:"1 Dock Rd, Chicago, IL 60601"`
	Currency        string               `json:"currency" example:"USD"`
	Status          domain.InvoiceStatus `json:"status" example:"APPROVED"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// Response wraps a successful response.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
