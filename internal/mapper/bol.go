package mapper

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"freightdoc/internal/domain"
	"freightdoc/internal/extraction"
)

// cityStateZip matches the trailing "City, ST 12345" of a US address.
var cityStateZip = regexp.MustCompile(`([^,\n]+),\s*([A-Za-z]{2})\.?\s+(\d{5}(?:-\d{4})?)\s*$`)

// party is one of the shipper, consignee, bill-to or carrier blocks.
type party struct {
	Name, Address, City, State, Zip string
}

// MapBillOfLading converts a BOL extraction payload into a bill of lading,
// its line items and its references. PO, seal and customer reference arrays
// each become one reference row per element.
func MapBillOfLading(raw []byte, documentID, organizationID uuid.UUID) (*domain.BillOfLadingSet, error) {
	p, err := extraction.Parse(raw)
	if err != nil {
		return nil, &domain.MappingError{DocumentType: domain.DocumentTypeBillOfLading, Reason: err.Error()}
	}

	id := rootID(documentID, string(domain.DocumentTypeBillOfLading))
	parties := p.Object("parties")
	shipper := mapParty(parties.Object("shipper"))
	consignee := mapParty(parties.Object("consignee"))
	billTo := mapParty(parties.Object("bill_to"))
	carrier := parties.Object("carrier")
	summary := p.Object("freight_summary")
	signatures := p.Object("signatures")

	lineItems := mapLineItems(p, id)
	hazmat := summary.Bool("is_hazmat_detected")
	for _, li := range lineItems {
		hazmat = hazmat || li.IsHazmat
	}

	bol := domain.BillOfLading{
		ID:                 id,
		OrganizationID:     organizationID,
		DocumentID:         documentID,
		BOLNumber:          p.String("", "bol_number"),
		PRONumber:          p.String("", "references.pro_number", "pro_number"),
		PickupDate:         firstDate(p, "pickup_date", "dates.pickup_date", "dates.ship_date"),
		DeliveryDate:       firstDate(p, "delivery_date", "dates.delivery_date"),
		ShipperName:        shipper.Name,
		ShipperAddress:     shipper.Address,
		ShipperCity:        shipper.City,
		ShipperState:       shipper.State,
		ShipperZip:         shipper.Zip,
		ConsigneeName:      consignee.Name,
		ConsigneeAddress:   consignee.Address,
		ConsigneeCity:      consignee.City,
		ConsigneeState:     consignee.State,
		ConsigneeZip:       consignee.Zip,
		BillToName:         billTo.Name,
		BillToAddress:      billTo.Address,
		CarrierName:        carrier.String("", "name"),
		CarrierSCAC:        carrier.String("", "scac"),
		TotalHandlingUnits: summary.Int("total_handling_units"),
		TotalWeightLbs:     summary.Numeric("total_weight_lbs"),
		IsHazmat:           hazmat,
		DeclaredValue:      summary.Numeric("declared_value"),
		PaymentTerms:       p.String("", "billing_terms.payment_method", "billing_terms.terms"),
		ShipperSigned:      signatures.Bool("shipper_signed"),
		CarrierSigned:      signatures.Bool("carrier_signed"),
		ReceiverSigned:     signatures.Bool("receiver_signed"),
		Remarks:            signatures.String("", "notes"),
	}

	return &domain.BillOfLadingSet{
		BillOfLading: bol,
		LineItems:    lineItems,
		References:   mapBOLReferences(p, id),
	}, nil
}

// mapParty reads a party block. City, state and zip fall back to the tail of
// address_raw when the extraction did not split them out.
func mapParty(o extraction.Payload) party {
	pt := party{
		Name:    o.String("", "name"),
		Address: o.String("", "address_raw", "address"),
		City:    o.String("", "city"),
		State:   o.String("", "state"),
		Zip:     o.String("", "zip", "postal_code"),
	}
	if pt.Address == "" || (pt.City != "" && pt.State != "" && pt.Zip != "") {
		return pt
	}
	m := cityStateZip.FindStringSubmatch(pt.Address)
	if m == nil {
		return pt
	}
	if pt.City == "" {
		pt.City = strings.TrimSpace(m[1])
	}
	if pt.State == "" {
		pt.State = strings.ToUpper(m[2])
	}
	if pt.Zip == "" {
		pt.Zip = m[3]
	}
	return pt
}

func mapLineItems(p extraction.Payload, bolID uuid.UUID) []domain.BOLLineItem {
	var items []domain.BOLLineItem
	for _, li := range p.Objects("freight_line_items") {
		pos := len(items) + 1
		items = append(items, domain.BOLLineItem{
			ID:            childID(bolID, "line_item", pos),
			BOLID:         bolID,
			Position:      pos,
			Description:   li.String("", "description", "commodity_description"),
			HandlingUnits: li.Int("handling_units", "quantity"),
			PackageType:   li.String("", "package_type"),
			WeightLbs:     li.Numeric("weight_lbs", "weight"),
			FreightClass:  li.String("", "freight_class", "class"),
			NMFCCode:      li.String("", "nmfc_code", "nmfc"),
			IsHazmat:      li.Bool("is_hazmat"),
		})
	}
	return items
}

var referenceSources = []struct {
	field string
	typ   domain.ReferenceType
}{
	{"po_numbers", domain.ReferenceTypePO},
	{"seal_numbers", domain.ReferenceTypeSeal},
	{"customer_reference_numbers", domain.ReferenceTypeCustomerRef},
}

func mapBOLReferences(p extraction.Payload, bolID uuid.UUID) []domain.BOLReference {
	refs := p.Object("references")
	var out []domain.BOLReference
	for _, src := range referenceSources {
		for _, el := range refs.Array(src.field) {
			value := strings.TrimSpace(el.String())
			if value == "" || el.IsObject() || el.IsArray() {
				continue
			}
			pos := len(out) + 1
			out = append(out, domain.BOLReference{
				ID:            childID(bolID, "reference", pos),
				BOLID:         bolID,
				Position:      pos,
				ReferenceType: src.typ,
				Value:         value,
			})
		}
	}
	return out
}

func firstDate(p extraction.Payload, paths ...string) *string {
	for _, path := range paths {
		if d := extraction.ParseDate(p.Get(path)); d != nil {
			return d
		}
	}
	return nil
}
