// Package detention prices a driver's wait at a facility.
package detention

import (
	"math"

	"freightdoc/internal/config"
	"freightdoc/internal/domain"
	"freightdoc/internal/resolve"
)

// Facility is the name and address printed on an invoice.
type Facility struct {
	Name    string
	Address string
}

// Overrides are caller-supplied invoice details. Zero values mean "not given".
type Overrides struct {
	RatePerHour     *float64
	Currency        string
	PONumber        string
	BOLNumber       string
	BrokerEmail     string
	FacilityName    string
	FacilityAddress string
}

// Sources are lazy lookups consulted when an override is absent. Any of them
// may be nil.
type Sources struct {
	LoadDetentionRate resolve.Candidate[float64]
	Stop              resolve.Candidate[Facility]
	FirstStopOfLoad   resolve.Candidate[Facility]
}

// Calculation is the priced result for one detention record.
type Calculation struct {
	TotalHours      float64
	FreeTimeHours   float64
	PayableHours    float64
	RatePerHour     float64
	TotalDue        float64
	Currency        string
	FacilityName    string
	FacilityAddress string
}

// Calculate prices a detention record. Both timestamps must be present.
//
// The rate is the first of: a positive override, a positive load rate, the
// configured default. Facility name and address are resolved separately
// from: the override, the referenced stop, the first stop of the load's rate
// confirmation, the configured fallback. total_due is rounded to cents.
func Calculate(cfg config.EngineConfig, rec *domain.DetentionRecord, over Overrides, src Sources) (*Calculation, error) {
	var missing []string
	if rec.StartTime == nil {
		missing = append(missing, "start_time")
	}
	if rec.EndTime == nil {
		missing = append(missing, "end_time")
	}
	if len(missing) > 0 {
		return nil, &domain.IncompleteRecordError{RecordID: rec.ID, Missing: missing}
	}

	total := rec.EndTime.Sub(*rec.StartTime).Hours()
	payable := math.Max(0, total-cfg.FreeTimeHours)

	rate := resolve.First(cfg.DefaultDetentionRate,
		resolve.Positive(over.RatePerHour),
		src.LoadDetentionRate,
	)

	stop := facilityCandidate(src.Stop)
	firstStop := facilityCandidate(src.FirstStopOfLoad)
	name := resolve.First(cfg.FallbackFacilityName,
		resolve.NonEmpty(over.FacilityName),
		field(stop, func(f Facility) string { return f.Name }),
		field(firstStop, func(f Facility) string { return f.Name }),
	)
	address := resolve.First(cfg.FallbackFacilityAddress,
		resolve.NonEmpty(over.FacilityAddress),
		field(stop, func(f Facility) string { return f.Address }),
		field(firstStop, func(f Facility) string { return f.Address }),
	)

	return &Calculation{
		TotalHours:      total,
		FreeTimeHours:   cfg.FreeTimeHours,
		PayableHours:    payable,
		RatePerHour:     rate,
		TotalDue:        roundCents(payable * rate),
		Currency:        resolve.First(cfg.DefaultCurrency, resolve.NonEmpty(over.Currency)),
		FacilityName:    name,
		FacilityAddress: address,
	}, nil
}

func facilityCandidate(c resolve.Candidate[Facility]) resolve.Candidate[Facility] {
	if c == nil {
		return nil
	}
	return resolve.Once(c)
}

// field narrows a facility lookup to one non-empty attribute.
func field(c resolve.Candidate[Facility], get func(Facility) string) resolve.Candidate[string] {
	if c == nil {
		return nil
	}
	return func() (string, bool) {
		f, ok := c()
		if !ok {
			return "", false
		}
		v := get(f)
		return v, v != ""
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
