// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/documents/ingest": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Ingest an extraction payload",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"description": "Document and extraction payload", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.IngestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Document ingested", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid request or unsupported document type", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "409": {"description": "Document already ingested", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Payload is not a JSON object", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/rate-confirmations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rate-confirmations"],
                "summary": "Get rate confirmation",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Rate confirmation ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Rate confirmation", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Rate confirmation not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/rate-confirmations/{id}/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rate-confirmations"],
                "summary": "List scheduled notifications",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Rate confirmation ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Scheduled notifications", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Rate confirmation not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/rate-confirmations/{id}/accept": {
            "post": {
                "produces": ["application/json"],
                "tags": ["rate-confirmations"],
                "summary": "Accept rate confirmation",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Rate confirmation ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "409": {"description": "Rate confirmation is not under review", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/rate-confirmations/{id}/reject": {
            "post": {
                "produces": ["application/json"],
                "tags": ["rate-confirmations"],
                "summary": "Reject rate confirmation",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Rate confirmation ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Rejected", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "409": {"description": "Rate confirmation is not under review", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/bills-of-lading/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bills-of-lading"],
                "summary": "Get bill of lading",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Bill of lading ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Bill of lading with line items and references", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Bill of lading not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/bills-of-lading/{id}/validate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["bills-of-lading"],
                "summary": "Re-validate bill of lading",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Bill of lading ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Verdict", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "409": {"description": "Bill of lading is not linked to a load", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/bills-of-lading/{id}/verdict": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bills-of-lading"],
                "summary": "Get validation verdict",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Bill of lading ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Verdict", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "No verdict recorded", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/detention/invoices": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["detention"],
                "summary": "Generate detention invoice",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"description": "Detention record and optional overrides", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GenerateInvoiceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Invoice created", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Detention record not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Detention record has no start or end time", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/detention/invoices/export": {
            "post": {
                "produces": ["application/json"],
                "tags": ["detention"],
                "summary": "Export invoice register",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Register exported", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/detention/invoices/{id}/send": {
            "post": {
                "produces": ["application/json"],
                "tags": ["detention"],
                "summary": "Send detention invoice",
                "parameters": [
                    {"type": "string", "description": "Organization ID (UUID)", "name": "X-Organization-ID", "in": "header", "required": true},
                    {"type": "string", "description": "Invoice ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Invoice sent", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "409": {"description": "Invoice already sent", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Invoice has no broker email", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.APIError"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.IngestRequest": {
            "type": "object",
            "required": ["document_id", "document_type", "payload"],
            "properties": {
                "document_id": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440000"},
                "document_type": {"type": "string", "example": "rate_con"},
                "load_id": {"type": "string", "example": "660e8400-e29b-41d4-a716-446655440001"},
                "payload": {"type": "object"}
            }
        },
        "handler.GenerateInvoiceRequest": {
            "type": "object",
            "required": ["detention_record_id"],
            "properties": {
                "detention_record_id": {"type": "string", "example": "770e8400-e29b-41d4-a716-446655440002"},
                "stop_id": {"type": "string", "example": "880e8400-e29b-41d4-a716-446655440003"},
                "invoice_details": {"$ref": "#/definitions/service.InvoiceDetails"}
            }
        },
        "service.InvoiceDetails": {
            "type": "object",
            "properties": {
                "rate_per_hour": {"type": "number"},
                "currency": {"type": "string"},
                "po_number": {"type": "string"},
                "bol_number": {"type": "string"},
                "broker_email": {"type": "string"},
                "facility_name": {"type": "string"},
                "facility_address": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Freight Document Engine API",
	Description:      "Normalizes extracted freight documents, validates bills of lading against loads and bills detention.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
