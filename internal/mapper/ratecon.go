package mapper

import (
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"freightdoc/internal/domain"
	"freightdoc/internal/extraction"
)

// MapRateConfirmation converts a rate confirmation extraction payload into a
// rate confirmation and its child rows. Absent fields take their zero value;
// the only failure is a payload whose root is not a JSON object.
func MapRateConfirmation(raw []byte, documentID, organizationID uuid.UUID) (*domain.RateConfirmationSet, error) {
	p, err := extraction.Parse(raw)
	if err != nil {
		return nil, &domain.MappingError{DocumentType: domain.DocumentTypeRateConfirmation, Reason: err.Error()}
	}

	id := rootID(documentID, string(domain.DocumentTypeRateConfirmation))
	broker := p.Object("broker_details")
	carrier := p.Object("carrier_details")
	financials := p.Object("financials")
	load := p.Object("load_details")

	rc := domain.RateConfirmation{
		ID:                   id,
		OrganizationID:       organizationID,
		DocumentID:           documentID,
		LoadNumber:           p.String("", "load_details.load_number", "load_number"),
		BrokerName:           broker.String("", "name", "broker_name"),
		BrokerMCNumber:       broker.String("", "mc_number"),
		BrokerAddress:        broker.String("", "address"),
		BrokerPhone:          broker.String("", "phone"),
		BrokerEmail:          broker.String("", "email"),
		BrokerContact:        broker.String("", "contact_name", "contact"),
		CarrierName:          carrier.String("", "name", "carrier_name"),
		CarrierMCNumber:      carrier.String("", "mc_number"),
		CarrierDOTNumber:     carrier.String("", "dot_number"),
		CarrierAddress:       carrier.String("", "address"),
		CarrierPhone:         carrier.String("", "phone"),
		CarrierEmail:         carrier.String("", "email"),
		TotalRateAmount:      financials.Numeric("total_rate_amount"),
		Currency:             financials.String("", "currency"),
		CommodityDescription: load.String("", "commodity", "commodity_description"),
		CommodityWeight:      load.Numeric("weight", "weight_lbs"),
		EquipmentType:        load.String("", "equipment_type"),
		DocumentDate:         extraction.ParseDate(p.Get("document_date")),
		OverallRiskTier:      domain.ParseRiskTier(p.String("", "overall_traffic_light")),
		Status:               domain.RateConfirmationStatusUnderReview,
	}

	return &domain.RateConfirmationSet{
		RateConfirmation:     rc,
		Stops:                mapStops(p, id),
		ReferenceNumbers:     mapReferenceNumbers(p, id),
		Charges:              mapCharges(financials, id),
		RiskClauses:          mapRiskClauses(p, id),
		DispatchInstructions: mapDispatchInstructions(p, id),
	}, nil
}

// mapStops numbers stops by their position in the source array. Only the
// exact, untrimmed value "Pickup" yields a pickup stop.
func mapStops(p extraction.Payload, rcID uuid.UUID) []domain.Stop {
	items := p.Array("stops")
	stops := make([]domain.Stop, 0, len(items))
	for i, el := range items {
		seq := i + 1
		s := extraction.Wrap(el)
		stopType := domain.StopTypeDelivery
		if raw := s.Get("stop_type"); raw.Type == gjson.String && raw.Str == string(domain.StopTypePickup) {
			stopType = domain.StopTypePickup
		}
		stops = append(stops, domain.Stop{
			ID:                 childID(rcID, "stop", seq),
			RateConfirmationID: rcID,
			SequenceNumber:     seq,
			StopType:           stopType,
			FacilityName:       s.String("", "facility_name", "name"),
			Address:            s.String("", "address"),
			ScheduledArrival:   s.OptString("scheduled_arrival"),
			ScheduledDeparture: s.OptString("scheduled_departure"),
			Date:               extraction.ParseDate(s.Get("date")),
			Time:               extraction.ParseTime(s.Get("time")),
			ContactName:        s.String("", "contact_name"),
			ContactPhone:       s.String("", "contact_phone"),
			Notes:              s.String("", "notes"),
		})
	}
	return stops
}

func mapReferenceNumbers(p extraction.Payload, rcID uuid.UUID) []domain.ReferenceNumber {
	var refs []domain.ReferenceNumber
	for _, r := range p.Objects("reference_numbers") {
		value := r.String("", "value")
		if value == "" {
			continue
		}
		pos := len(refs) + 1
		refs = append(refs, domain.ReferenceNumber{
			ID:                 childID(rcID, "reference", pos),
			RateConfirmationID: rcID,
			Position:           pos,
			ReferenceType:      r.String("", "type"),
			Value:              value,
		})
	}
	return refs
}

// mapCharges keeps every charge in source order, including ones without a
// parseable amount.
func mapCharges(financials extraction.Payload, rcID uuid.UUID) []domain.Charge {
	var charges []domain.Charge
	for _, c := range financials.Objects("charges") {
		pos := len(charges) + 1
		charges = append(charges, domain.Charge{
			ID:                 childID(rcID, "charge", pos),
			RateConfirmationID: rcID,
			Position:           pos,
			Description:        c.String("", "description", "name"),
			Amount:             c.Numeric("amount"),
		})
	}
	return charges
}

func mapRiskClauses(p extraction.Payload, rcID uuid.UUID) []domain.RiskClause {
	var clauses []domain.RiskClause
	for _, c := range p.Objects("clauses_found") {
		pos := len(clauses) + 1
		clauses = append(clauses, domain.RiskClause{
			ID:                 childID(rcID, "clause", pos),
			RateConfirmationID: rcID,
			Position:           pos,
			ClauseType:         c.String("", "clause_type"),
			Severity:           domain.ParseRiskTier(c.String("", "traffic_light")),
			TitleEN:            c.String("", "title_en", "title.en"),
			TitleES:            c.String("", "title_es", "title.es"),
			ExplanationEN:      c.String("", "explanation_en", "explanation.en"),
			ExplanationES:      c.String("", "explanation_es", "explanation.es"),
			OriginalText:       c.String("", "original_text"),
			Notification:       mapNotification(c.Object("notification")),
		})
	}
	return clauses
}

func mapNotification(n extraction.Payload) *domain.NotificationIntent {
	if !n.IsObject() {
		return nil
	}
	return &domain.NotificationIntent{
		Title:                 n.String("", "title"),
		Description:           n.String("", "description"),
		TriggerType:           domain.ParseTriggerType(n.String("", "trigger_type")),
		DeadlineDate:          extraction.ParseDate(n.Get("deadline_iso")),
		RelativeMinutesOffset: n.Int("relative_minutes_offset"),
		StartEvent:            n.String("", "notification_start_event", "start_event"),
		OriginalClause:        n.String("", "original_clause"),
	}
}

// mapDispatchInstructions accepts plain strings or objects carrying the text
// under "instruction", "text" or "description".
func mapDispatchInstructions(p extraction.Payload, rcID uuid.UUID) []domain.DispatchInstruction {
	var out []domain.DispatchInstruction
	for _, el := range p.Array("driver_dispatch_instructions") {
		var text string
		switch {
		case el.Type == gjson.String:
			text = strings.TrimSpace(el.Str)
		case el.IsObject():
			text = extraction.Wrap(el).String("", "instruction", "text", "description")
		}
		if text == "" {
			continue
		}
		pos := len(out) + 1
		out = append(out, domain.DispatchInstruction{
			ID:                 childID(rcID, "dispatch", pos),
			RateConfirmationID: rcID,
			Position:           pos,
			Instruction:        text,
		})
	}
	return out
}
