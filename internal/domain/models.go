package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RateConfirmation is the normalized header of a broker rate confirmation.
type RateConfirmation struct {
	ID                   uuid.UUID              `db:"id" json:"id"`
	OrganizationID       uuid.UUID              `db:"organization_id" json:"organization_id"`
	DocumentID           uuid.UUID              `db:"document_id" json:"document_id"`
	LoadID               *uuid.UUID             `db:"load_id" json:"load_id,omitempty"`
	LoadNumber           string                 `db:"load_number" json:"load_number"`
	BrokerName           string                 `db:"broker_name" json:"broker_name"`
	BrokerMCNumber       string                 `db:"broker_mc_number" json:"broker_mc_number"`
	BrokerAddress        string                 `db:"broker_address" json:"broker_address"`
	BrokerPhone          string                 `db:"broker_phone" json:"broker_phone"`
	BrokerEmail          string                 `db:"broker_email" json:"broker_email"`
	BrokerContact        string                 `db:"broker_contact" json:"broker_contact"`
	CarrierName          string                 `db:"carrier_name" json:"carrier_name"`
	CarrierMCNumber      string                 `db:"carrier_mc_number" json:"carrier_mc_number"`
	CarrierDOTNumber     string                 `db:"carrier_dot_number" json:"carrier_dot_number"`
	CarrierAddress       string                 `db:"carrier_address" json:"carrier_address"`
	CarrierPhone         string                 `db:"carrier_phone" json:"carrier_phone"`
	CarrierEmail         string                 `db:"carrier_email" json:"carrier_email"`
	TotalRateAmount      *float64               `db:"total_rate_amount" json:"total_rate_amount"`
	Currency             string                 `db:"currency" json:"currency"`
	CommodityDescription string                 `db:"commodity_description" json:"commodity_description"`
	CommodityWeight      *float64               `db:"commodity_weight" json:"commodity_weight"`
	EquipmentType        string                 `db:"equipment_type" json:"equipment_type"`
	DocumentDate         *string                `db:"document_date" json:"document_date"`
	OverallRiskTier      RiskTier               `db:"overall_risk_tier" json:"overall_risk_tier"`
	Status               RateConfirmationStatus `db:"status" json:"status"`
	CreatedAt            time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time              `db:"updated_at" json:"updated_at"`
}

// Stop is one pickup or delivery on a rate confirmation. SequenceNumber is
// the 1-based position of the stop in the source list.
type Stop struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	RateConfirmationID uuid.UUID `db:"rate_confirmation_id" json:"rate_confirmation_id"`
	SequenceNumber     int       `db:"sequence_number" json:"sequence_number"`
	StopType           StopType  `db:"stop_type" json:"stop_type"`
	FacilityName       string    `db:"facility_name" json:"facility_name"`
	Address            string    `db:"address" json:"address"`
	ScheduledArrival   *string   `db:"scheduled_arrival" json:"scheduled_arrival"`
	ScheduledDeparture *string   `db:"scheduled_departure" json:"scheduled_departure"`
	Date               *string   `db:"date" json:"date"`
	Time               *string   `db:"time" json:"time"`
	ContactName        string    `db:"contact_name" json:"contact_name"`
	ContactPhone       string    `db:"contact_phone" json:"contact_phone"`
	Notes              string    `db:"notes" json:"notes"`
}

// ReferenceNumber is a typed reference attached to a rate confirmation.
type ReferenceNumber struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	RateConfirmationID uuid.UUID `db:"rate_confirmation_id" json:"rate_confirmation_id"`
	Position           int       `db:"position" json:"position"`
	ReferenceType      string    `db:"reference_type" json:"reference_type"`
	Value              string    `db:"value" json:"value"`
}

// Charge is one line of a rate confirmation's financials.
type Charge struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	RateConfirmationID uuid.UUID `db:"rate_confirmation_id" json:"rate_confirmation_id"`
	Position           int       `db:"position" json:"position"`
	Description        string    `db:"description" json:"description"`
	Amount             *float64  `db:"amount" json:"amount"`
}

// NotificationIntent is the follow-up a clause asks for, as stated in the
// document. DeadlineDate is only expected for Absolute triggers.
type NotificationIntent struct {
	Title                 string      `json:"title"`
	Description           string      `json:"description"`
	TriggerType           TriggerType `json:"trigger_type"`
	DeadlineDate          *string     `json:"deadline_date,omitempty"`
	RelativeMinutesOffset *int        `json:"relative_minutes_offset,omitempty"`
	StartEvent            string      `json:"start_event,omitempty"`
	OriginalClause        string      `json:"original_clause,omitempty"`
}

// RiskClause is a contractual clause flagged by the extraction service.
type RiskClause struct {
	ID                 uuid.UUID           `db:"id" json:"id"`
	RateConfirmationID uuid.UUID           `db:"rate_confirmation_id" json:"rate_confirmation_id"`
	Position           int                 `db:"position" json:"position"`
	ClauseType         string              `db:"clause_type" json:"clause_type"`
	Severity           RiskTier            `db:"severity" json:"severity"`
	TitleEN            string              `db:"title_en" json:"title_en"`
	TitleES            string              `db:"title_es" json:"title_es"`
	ExplanationEN      string              `db:"explanation_en" json:"explanation_en"`
	ExplanationES      string              `db:"explanation_es" json:"explanation_es"`
	OriginalText       string              `db:"original_text" json:"original_text"`
	Notification       *NotificationIntent `db:"notification" json:"notification,omitempty"`
}

// DispatchInstruction is a driver-facing instruction line.
type DispatchInstruction struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	RateConfirmationID uuid.UUID `db:"rate_confirmation_id" json:"rate_confirmation_id"`
	Position           int       `db:"position" json:"position"`
	Instruction        string    `db:"instruction" json:"instruction"`
}

// RateConfirmationSet is a rate confirmation with all of its child rows.
type RateConfirmationSet struct {
	RateConfirmation     RateConfirmation      `json:"rate_confirmation"`
	Stops                []Stop                `json:"stops"`
	ReferenceNumbers     []ReferenceNumber     `json:"reference_numbers"`
	Charges              []Charge              `json:"charges"`
	RiskClauses          []RiskClause          `json:"risk_clauses"`
	DispatchInstructions []DispatchInstruction `json:"dispatch_instructions"`
}

// ScheduledNotification is a persisted clause follow-up awaiting delivery.
type ScheduledNotification struct {
	ID                    uuid.UUID          `db:"id" json:"id"`
	OrganizationID        uuid.UUID          `db:"organization_id" json:"organization_id"`
	RateConfirmationID    uuid.UUID          `db:"rate_confirmation_id" json:"rate_confirmation_id"`
	RiskClauseID          uuid.UUID          `db:"risk_clause_id" json:"risk_clause_id"`
	Severity              RiskTier           `db:"severity" json:"severity"`
	Title                 string             `db:"title" json:"title"`
	Description           string             `db:"description" json:"description"`
	ClauseTitleEN         string             `db:"clause_title_en" json:"clause_title_en"`
	ClauseTitleES         string             `db:"clause_title_es" json:"clause_title_es"`
	ClauseExplanationEN   string             `db:"clause_explanation_en" json:"clause_explanation_en"`
	ClauseExplanationES   string             `db:"clause_explanation_es" json:"clause_explanation_es"`
	TriggerType           TriggerType        `db:"trigger_type" json:"trigger_type"`
	DeadlineDate          *string            `db:"deadline_date" json:"deadline_date"`
	RelativeMinutesOffset *int               `db:"relative_minutes_offset" json:"relative_minutes_offset"`
	StartEvent            string             `db:"start_event" json:"start_event"`
	OriginalClause        string             `db:"original_clause" json:"original_clause"`
	Status                NotificationStatus `db:"status" json:"status"`
	CreatedAt             time.Time          `db:"created_at" json:"created_at"`
}

// BillOfLading is the normalized header of a BOL.
type BillOfLading struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	OrganizationID     uuid.UUID  `db:"organization_id" json:"organization_id"`
	DocumentID         uuid.UUID  `db:"document_id" json:"document_id"`
	LoadID             *uuid.UUID `db:"load_id" json:"load_id,omitempty"`
	BOLNumber          string     `db:"bol_number" json:"bol_number"`
	PRONumber          string     `db:"pro_number" json:"pro_number"`
	PickupDate         *string    `db:"pickup_date" json:"pickup_date"`
	DeliveryDate       *string    `db:"delivery_date" json:"delivery_date"`
	ShipperName        string     `db:"shipper_name" json:"shipper_name"`
	ShipperAddress     string     `db:"shipper_address" json:"shipper_address"`
	ShipperCity        string     `db:"shipper_city" json:"shipper_city"`
	ShipperState       string     `db:"shipper_state" json:"shipper_state"`
	ShipperZip         string     `db:"shipper_zip" json:"shipper_zip"`
	ConsigneeName      string     `db:"consignee_name" json:"consignee_name"`
	ConsigneeAddress   string     `db:"consignee_address" json:"consignee_address"`
	ConsigneeCity      string     `db:"consignee_city" json:"consignee_city"`
	ConsigneeState     string     `db:"consignee_state" json:"consignee_state"`
	ConsigneeZip       string     `db:"consignee_zip" json:"consignee_zip"`
	BillToName         string     `db:"bill_to_name" json:"bill_to_name"`
	BillToAddress      string     `db:"bill_to_address" json:"bill_to_address"`
	CarrierName        string     `db:"carrier_name" json:"carrier_name"`
	CarrierSCAC        string     `db:"carrier_scac" json:"carrier_scac"`
	TotalHandlingUnits *int       `db:"total_handling_units" json:"total_handling_units"`
	TotalWeightLbs     *float64   `db:"total_weight_lbs" json:"total_weight_lbs"`
	IsHazmat           bool       `db:"is_hazmat" json:"is_hazmat"`
	DeclaredValue      *float64   `db:"declared_value" json:"declared_value"`
	PaymentTerms       string     `db:"payment_terms" json:"payment_terms"`
	ShipperSigned      bool       `db:"shipper_signed" json:"shipper_signed"`
	CarrierSigned      bool       `db:"carrier_signed" json:"carrier_signed"`
	ReceiverSigned     bool       `db:"receiver_signed" json:"receiver_signed"`
	Remarks            string     `db:"remarks" json:"remarks"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}

// BOLLineItem is one commodity row of a BOL.
type BOLLineItem struct {
	ID            uuid.UUID `db:"id" json:"id"`
	BOLID         uuid.UUID `db:"bol_id" json:"bol_id"`
	Position      int       `db:"position" json:"position"`
	Description   string    `db:"description" json:"description"`
	HandlingUnits *int      `db:"handling_units" json:"handling_units"`
	PackageType   string    `db:"package_type" json:"package_type"`
	WeightLbs     *float64  `db:"weight_lbs" json:"weight_lbs"`
	FreightClass  string    `db:"freight_class" json:"freight_class"`
	NMFCCode      string    `db:"nmfc_code" json:"nmfc_code"`
	IsHazmat      bool      `db:"is_hazmat" json:"is_hazmat"`
}

// BOLReference is a PO, seal or customer reference printed on a BOL.
type BOLReference struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	BOLID         uuid.UUID     `db:"bol_id" json:"bol_id"`
	Position      int           `db:"position" json:"position"`
	ReferenceType ReferenceType `db:"reference_type" json:"reference_type"`
	Value         string        `db:"value" json:"value"`
}

// BillOfLadingSet is a BOL with its line items and references.
type BillOfLadingSet struct {
	BillOfLading BillOfLading   `json:"bill_of_lading"`
	LineItems    []BOLLineItem  `json:"line_items"`
	References   []BOLReference `json:"references"`
}

// Load is the operational shipment record owned by the dispatch system. It is
// read-only here. Pickup and delivery addresses are either an object with
// city/state fields or a bare string.
type Load struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	OrganizationID     uuid.UUID       `db:"organization_id" json:"organization_id"`
	LoadNumber         string          `db:"load_number" json:"load_number"`
	BrokerReference    *string         `db:"broker_reference" json:"broker_reference"`
	PickupAddress      json.RawMessage `db:"pickup_address" json:"pickup_address"`
	DeliveryAddress    json.RawMessage `db:"delivery_address" json:"delivery_address"`
	Weight             *float64        `db:"weight" json:"weight"`
	Commodity          string          `db:"commodity" json:"commodity"`
	DetentionRate      *float64        `db:"detention_rate" json:"detention_rate"`
	RateConfirmationID *uuid.UUID      `db:"rate_confirmation_id" json:"rate_confirmation_id"`
	Notes              string          `db:"notes" json:"notes"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
}

// ValidationVerdict is the outcome of comparing a BOL to its load. There is at
// most one verdict per (BOL, load) pair.
type ValidationVerdict struct {
	ID                 uuid.UUID     `db:"id" json:"id"`
	OrganizationID     uuid.UUID     `db:"organization_id" json:"organization_id"`
	BOLID              uuid.UUID     `db:"bol_id" json:"bol_id"`
	LoadID             uuid.UUID     `db:"load_id" json:"load_id"`
	Status             VerdictStatus `db:"status" json:"status"`
	LocationMatchScore int           `db:"location_match_score" json:"location_match_score"`
	WeightVariancePct  *float64      `db:"weight_variance_pct" json:"weight_variance_pct"`
	HasHazmatMismatch  bool          `db:"has_hazmat_mismatch" json:"has_hazmat_mismatch"`
	HasPOMismatch      bool          `db:"has_po_mismatch" json:"has_po_mismatch"`
	Reasons            StringList    `db:"reasons" json:"reasons"`
	ValidatedAt        time.Time     `db:"validated_at" json:"validated_at"`
}

// DetentionRecord is a driver's measured wait at a facility.
type DetentionRecord struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	OrganizationID   uuid.UUID  `db:"organization_id" json:"organization_id"`
	LoadID           *uuid.UUID `db:"load_id" json:"load_id"`
	StopID           *uuid.UUID `db:"stop_id" json:"stop_id"`
	StartTime        *time.Time `db:"start_time" json:"start_time"`
	EndTime          *time.Time `db:"end_time" json:"end_time"`
	StartLat         *float64   `db:"start_lat" json:"start_lat"`
	StartLng         *float64   `db:"start_lng" json:"start_lng"`
	EndLat           *float64   `db:"end_lat" json:"end_lat"`
	EndLng           *float64   `db:"end_lng" json:"end_lng"`
	EvidencePhotoKey *string    `db:"evidence_photo_key" json:"evidence_photo_key"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// DetentionInvoice is a billable claim derived from a detention record.
type DetentionInvoice struct {
	ID                uuid.UUID     `db:"id" json:"id"`
	OrganizationID    uuid.UUID     `db:"organization_id" json:"organization_id"`
	DetentionRecordID uuid.UUID     `db:"detention_record_id" json:"detention_record_id"`
	LoadID            *uuid.UUID    `db:"load_id" json:"load_id"`
	InvoiceNumber     string        `db:"invoice_number" json:"invoice_number"`
	FacilityName      string        `db:"facility_name" json:"facility_name"`
	FacilityAddress   string        `db:"facility_address" json:"facility_address"`
	StartTime         time.Time     `db:"start_time" json:"start_time"`
	EndTime           time.Time     `db:"end_time" json:"end_time"`
	TotalHours        float64       `db:"total_hours" json:"total_hours"`
	FreeTimeHours     float64       `db:"free_time_hours" json:"free_time_hours"`
	PayableHours      float64       `db:"payable_hours" json:"payable_hours"`
	RatePerHour       float64       `db:"rate_per_hour" json:"rate_per_hour"`
	TotalDue          float64       `db:"total_due" json:"total_due"`
	Currency          string        `db:"currency" json:"currency"`
	PONumber          string        `db:"po_number" json:"po_number"`
	BOLNumber         string        `db:"bol_number" json:"bol_number"`
	BrokerEmail       string        `db:"broker_email" json:"broker_email"`
	Status            InvoiceStatus `db:"status" json:"status"`
	GeneratedDate     time.Time     `db:"generated_date" json:"generated_date"`
	SentAt            *time.Time    `db:"sent_at" json:"sent_at"`
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
}
