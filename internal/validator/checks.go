package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// locationValidator compares pickup and delivery city/state between the BOL
// shipper/consignee and the load addresses. A field is skipped when either
// side is blank or the load address is a bare string.
type locationValidator struct{}

func (locationValidator) RuleKey() string  { return "location_match" }
func (locationValidator) RuleName() string { return "Pickup and delivery location match" }

func (locationValidator) Validate(in *Input, sc *Scorecard) {
	pickupCity, pickupState, pickupOK := addressParts(in.Load.PickupAddress)
	deliveryCity, deliveryState, deliveryOK := addressParts(in.Load.DeliveryAddress)

	compare := func(label, bolValue, loadValue string, decomposable bool) {
		bolValue, loadValue = strings.TrimSpace(bolValue), strings.TrimSpace(loadValue)
		if !decomposable || bolValue == "" || loadValue == "" {
			return
		}
		if strings.EqualFold(bolValue, loadValue) {
			return
		}
		sc.Deduct(locationMismatchPoints)
		sc.AddReason(CauseLocation, fmt.Sprintf("%s mismatch: BOL %q vs load %q", label, bolValue, loadValue))
	}

	compare("Pickup city", in.BOL.ShipperCity, pickupCity, pickupOK)
	compare("Pickup state", in.BOL.ShipperState, pickupState, pickupOK)
	compare("Delivery city", in.BOL.ConsigneeCity, deliveryCity, deliveryOK)
	compare("Delivery state", in.BOL.ConsigneeState, deliveryState, deliveryOK)
}

// addressParts reads city and state from a load address. Only JSON objects
// can be decomposed.
func addressParts(raw json.RawMessage) (city, state string, ok bool) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return "", "", false
	}
	r := gjson.ParseBytes(raw)
	if !r.IsObject() {
		return "", "", false
	}
	return r.Get("city").String(), r.Get("state").String(), true
}

// weightValidator computes the relative difference between the load weight
// and the BOL total weight when both are positive. The limit is checked
// against the exact variance; only the stored value is rounded. Identical
// weights record no note.
type weightValidator struct{}

func (weightValidator) RuleKey() string  { return "weight_variance" }
func (weightValidator) RuleName() string { return "Weight variance" }

func (weightValidator) Validate(in *Input, sc *Scorecard) {
	if in.Load.Weight == nil || in.BOL.TotalWeightLbs == nil {
		return
	}
	loadWeight, bolWeight := *in.Load.Weight, *in.BOL.TotalWeightLbs
	if loadWeight <= 0 || bolWeight <= 0 {
		return
	}

	raw := math.Abs(loadWeight-bolWeight) * 100 / loadWeight
	variance := roundTo(raw, 2)
	sc.WeightVariancePct = &variance
	if raw == 0 {
		return
	}

	if raw > weightVarianceLimitPct {
		sc.weightOverLimit = true
		sc.AddReason(CauseWeight, fmt.Sprintf("Weight variance %.1f%% exceeds %.0f%% (BOL %s lbs vs load %s lbs)",
			variance, weightVarianceLimitPct, formatWeight(bolWeight), formatWeight(loadWeight)))
		return
	}
	sc.AddReason(CauseWeight, fmt.Sprintf("Weight variance %.1f%% (BOL %s lbs vs load %s lbs)",
		variance, formatWeight(bolWeight), formatWeight(loadWeight)))
}

func formatWeight(w float64) string {
	return fmt.Sprintf("%g", w)
}

// hazmatValidator flags a BOL that declares hazardous materials when nothing
// in the load record mentions hazmat. The load has no structured hazmat flag,
// so its serialized form is searched instead.
type hazmatValidator struct{}

func (hazmatValidator) RuleKey() string  { return "hazmat_match" }
func (hazmatValidator) RuleName() string { return "Hazmat declaration" }

func (hazmatValidator) Validate(in *Input, sc *Scorecard) {
	if !in.BOL.IsHazmat {
		return
	}
	serialized, err := json.Marshal(in.Load)
	if err == nil && strings.Contains(strings.ToLower(string(serialized)), "hazmat") {
		return
	}
	sc.HazmatMismatch = true
	sc.AddReason(CauseHazmat, "BOL declares hazardous materials but the load has no hazmat designation")
}

// poValidator looks for the load's broker reference on the BOL number, the
// PRO number and every BOL reference value, matching by case-insensitive
// containment in either direction.
type poValidator struct{}

func (poValidator) RuleKey() string  { return "po_match" }
func (poValidator) RuleName() string { return "Broker reference on BOL" }

func (poValidator) Validate(in *Input, sc *Scorecard) {
	if in.Load.BrokerReference == nil {
		return
	}
	ref := strings.ToLower(strings.TrimSpace(*in.Load.BrokerReference))
	if ref == "" {
		return
	}

	candidates := []string{in.BOL.BOLNumber, in.BOL.PRONumber}
	for _, r := range in.References {
		candidates = append(candidates, r.Value)
	}
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if strings.Contains(c, ref) || strings.Contains(ref, c) {
			return
		}
	}

	sc.POMismatch = true
	sc.AddReason(CausePO, fmt.Sprintf("Broker reference %q not found on BOL number, PRO number or references", *in.Load.BrokerReference))
}
