package domain

import "strings"

// DocumentType identifies which mapper handles an extraction payload.
type DocumentType string

const (
	DocumentTypeRateConfirmation DocumentType = "rate_con"
	DocumentTypeBillOfLading     DocumentType = "bol"
)

// ValidDocumentTypes is the set of document types the ingestion pipeline accepts.
var ValidDocumentTypes = map[DocumentType]bool{
	DocumentTypeRateConfirmation: true,
	DocumentTypeBillOfLading:     true,
}

// RiskTier is the severity bucket of a rate confirmation or one of its clauses.
type RiskTier string

const (
	RiskTierRed     RiskTier = "RED"
	RiskTierYellow  RiskTier = "YELLOW"
	RiskTierGreen   RiskTier = "GREEN"
	RiskTierUnknown RiskTier = "UNKNOWN"
)

// ParseRiskTier maps a traffic-light label onto a tier. Anything that is not
// red, yellow or green (case-insensitive) becomes UNKNOWN.
func ParseRiskTier(s string) RiskTier {
	switch RiskTier(strings.ToUpper(strings.TrimSpace(s))) {
	case RiskTierRed:
		return RiskTierRed
	case RiskTierYellow:
		return RiskTierYellow
	case RiskTierGreen:
		return RiskTierGreen
	default:
		return RiskTierUnknown
	}
}

// RateConfirmationStatus tracks the review lifecycle of a rate confirmation.
type RateConfirmationStatus string

const (
	RateConfirmationStatusUnderReview RateConfirmationStatus = "under_review"
	RateConfirmationStatusAccepted    RateConfirmationStatus = "accepted"
	RateConfirmationStatusRejected    RateConfirmationStatus = "rejected"
)

// StopType is either Pickup or Delivery.
type StopType string

const (
	StopTypePickup   StopType = "Pickup"
	StopTypeDelivery StopType = "Delivery"
)

// TriggerType describes how a clause notification deadline is anchored.
type TriggerType string

const (
	TriggerTypeAbsolute    TriggerType = "Absolute"
	TriggerTypeRelative    TriggerType = "Relative"
	TriggerTypeConditional TriggerType = "Conditional"
)

// ParseTriggerType normalizes the casing of known trigger types. Unknown
// values are kept verbatim.
func ParseTriggerType(s string) TriggerType {
	s = strings.TrimSpace(s)
	for _, t := range []TriggerType{TriggerTypeAbsolute, TriggerTypeRelative, TriggerTypeConditional} {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return TriggerType(s)
}

// ReferenceType labels a BOL reference row.
type ReferenceType string

const (
	ReferenceTypePO          ReferenceType = "PO"
	ReferenceTypeSeal        ReferenceType = "SEAL"
	ReferenceTypeCustomerRef ReferenceType = "CUSTOMER_REF"
)

// VerdictStatus is the outcome of a BOL to load validation.
type VerdictStatus string

const (
	VerdictStatusPassed  VerdictStatus = "PASSED"
	VerdictStatusWarning VerdictStatus = "WARNING"
	VerdictStatusFailed  VerdictStatus = "FAILED"
)

// VerdictState tells callers whether an ingestion produced a verdict.
type VerdictState string

const (
	VerdictStateComputed      VerdictState = "computed"
	VerdictStateMissing       VerdictState = "missing"
	VerdictStateNotApplicable VerdictState = "not_applicable"
)

// InvoiceStatus tracks a detention invoice after generation.
type InvoiceStatus string

const (
	InvoiceStatusApproved InvoiceStatus = "APPROVED"
	InvoiceStatusSent     InvoiceStatus = "SENT"
)

// NotificationStatus tracks delivery of a scheduled clause notification.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
)
