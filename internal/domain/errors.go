package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound                 = errors.New("resource not found")
	ErrRateConfirmationNotFound = errors.New("rate confirmation not found")
	ErrBillOfLadingNotFound     = errors.New("bill of lading not found")
	ErrLoadNotFound             = errors.New("load not found")
	ErrStopNotFound             = errors.New("stop not found")
	ErrDetentionRecordNotFound  = errors.New("detention record not found")
	ErrInvoiceNotFound          = errors.New("detention invoice not found")
	ErrVerdictNotFound          = errors.New("validation verdict not found")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrUnsupportedDocumentType  = errors.New("unsupported document type")
	ErrNoLinkedLoad             = errors.New("bill of lading has no linked load")
	ErrMissingRecipient         = errors.New("invoice has no broker email")
	ErrDocumentAlreadyIngested  = errors.New("document has already been ingested")
)

// MappingError means an extraction payload could not be turned into a record.
type MappingError struct {
	DocumentType DocumentType
	Reason       string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s payload: %s", e.DocumentType, e.Reason)
}

// IncompleteRecordError means a detention record lacks the data needed to bill it.
type IncompleteRecordError struct {
	RecordID uuid.UUID
	Missing  []string
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("detention record %s is incomplete: missing %s", e.RecordID, strings.Join(e.Missing, ", "))
}

// LookupFailure wraps a failed read of a supporting record.
type LookupFailure struct {
	Entity string
	Key    string
	Err    error
}

func (e *LookupFailure) Error() string {
	return fmt.Sprintf("lookup %s %s: %v", e.Entity, e.Key, e.Err)
}

func (e *LookupFailure) Unwrap() error { return e.Err }

// PersistenceFailure wraps a failed write during a pipeline stage.
type PersistenceFailure struct {
	Stage string
	Err   error
}

func (e *PersistenceFailure) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Stage, e.Err)
}

func (e *PersistenceFailure) Unwrap() error { return e.Err }
