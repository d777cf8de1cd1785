package validator_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightdoc/internal/domain"
	"freightdoc/internal/validator"
	"freightdoc/mocks"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func baseBOL() *domain.BillOfLading {
	return &domain.BillOfLading{
		ID:             uuid.MustParse("0b7f9c4e-3f6a-4d43-9a51-1c6f1f7a2b10"),
		OrganizationID: uuid.MustParse("5d1b8f8e-8a0e-4d55-bc1f-7a1b7b1e9c20"),
		BOLNumber:      "BOL-1001",
		PRONumber:      "PRO-445566",
		ShipperCity:    "Chicago",
		ShipperState:   "IL",
		ConsigneeCity:  "Dallas",
		ConsigneeState: "TX",
		TotalWeightLbs: f64(40000),
	}
}

func baseLoad() *domain.Load {
	return &domain.Load{
		ID:              uuid.MustParse("9a3c2e1d-7b6f-4e58-8d2c-3e4f5a6b7c80"),
		LoadNumber:      "L-5001",
		BrokerReference: str("PO-778"),
		PickupAddress:   json.RawMessage(`{"street": "1 Dock Rd", "city": "Chicago", "state": "IL"}`),
		DeliveryAddress: json.RawMessage(`{"city": "Dallas", "state": "TX"}`),
		Weight:          f64(40000),
	}
}

func refs(values ...string) []domain.BOLReference {
	out := make([]domain.BOLReference, 0, len(values))
	for i, v := range values {
		out = append(out, domain.BOLReference{Position: i + 1, ReferenceType: domain.ReferenceTypePO, Value: v})
	}
	return out
}

func newEngine() *validator.Engine {
	return validator.NewEngine(validator.DefaultRegistry(), nil, nil, nil, zerolog.Nop())
}

func TestEvaluate_Passed(t *testing.T) {
	v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), References: refs("PO-778"), Load: baseLoad()})

	assert.Equal(t, domain.VerdictStatusPassed, v.Status)
	assert.Equal(t, 100, v.LocationMatchScore)
	require.NotNil(t, v.WeightVariancePct)
	assert.Equal(t, 0.0, *v.WeightVariancePct)
	assert.False(t, v.HasHazmatMismatch)
	assert.False(t, v.HasPOMismatch)
	assert.Empty(t, v.Reasons)
}

func TestEvaluate_CaseInsensitiveCity(t *testing.T) {
	load := baseLoad()
	load.PickupAddress = json.RawMessage(`{"city": "chicago", "state": " il "}`)

	v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), References: refs("PO-778"), Load: load})
	assert.Equal(t, 100, v.LocationMatchScore)
	assert.Equal(t, domain.VerdictStatusPassed, v.Status)
}

func TestEvaluate_WeightVarianceWithinTolerance(t *testing.T) {
	bol := baseBOL()
	bol.TotalWeightLbs = f64(38000)

	v := newEngine().Evaluate(&validator.Input{BOL: bol, References: refs("PO-778"), Load: baseLoad()})
	require.NotNil(t, v.WeightVariancePct)
	assert.Equal(t, 5.0, *v.WeightVariancePct)
	require.Len(t, v.Reasons, 1)
	assert.Contains(t, v.Reasons[0], "5.0%")
	assert.Equal(t, domain.VerdictStatusPassed, v.Status)
}

func TestEvaluate_WeightVarianceOverLimit(t *testing.T) {
	bol := baseBOL()
	bol.TotalWeightLbs = f64(35000)

	v := newEngine().Evaluate(&validator.Input{BOL: bol, References: refs("PO-778"), Load: baseLoad()})
	require.NotNil(t, v.WeightVariancePct)
	assert.Equal(t, 12.5, *v.WeightVariancePct)
	assert.Equal(t, domain.VerdictStatusWarning, v.Status)
}

func TestEvaluate_WeightVarianceLimitIsExact(t *testing.T) {
	load := baseLoad()
	load.Weight = f64(100000)

	tests := []struct {
		name      string
		bolWeight float64
		stored    float64
		status    domain.VerdictStatus
	}{
		{"just over the limit", 89996, 10.0, domain.VerdictStatusWarning},
		{"exactly at the limit", 90000, 10.0, domain.VerdictStatusPassed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bol := baseBOL()
			bol.TotalWeightLbs = f64(tt.bolWeight)

			v := newEngine().Evaluate(&validator.Input{BOL: bol, References: refs("PO-778"), Load: load})
			require.NotNil(t, v.WeightVariancePct)
			assert.Equal(t, tt.stored, *v.WeightVariancePct)
			assert.Equal(t, tt.status, v.Status)
			require.Len(t, v.Reasons, 1)
		})
	}
}

func TestEvaluate_IdenticalWeightsRecordNoNote(t *testing.T) {
	v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), References: refs("PO-778"), Load: baseLoad()})

	require.NotNil(t, v.WeightVariancePct)
	assert.Equal(t, 0.0, *v.WeightVariancePct)
	for _, r := range v.Reasons {
		assert.NotContains(t, r, "Weight variance")
	}
}

func TestEvaluate_WeightSkippedWhenNotPositive(t *testing.T) {
	load := baseLoad()
	load.Weight = f64(0)
	v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), References: refs("PO-778"), Load: load})
	assert.Nil(t, v.WeightVariancePct)

	bol := baseBOL()
	bol.TotalWeightLbs = nil
	v = newEngine().Evaluate(&validator.Input{BOL: bol, References: refs("PO-778"), Load: baseLoad()})
	assert.Nil(t, v.WeightVariancePct)
}

func TestEvaluate_HazmatMismatchFails(t *testing.T) {
	bol := baseBOL()
	bol.IsHazmat = true
	load := baseLoad()
	load.Notes = "Keep frozen at -10F"

	v := newEngine().Evaluate(&validator.Input{BOL: bol, References: refs("PO-778"), Load: load})
	assert.True(t, v.HasHazmatMismatch)
	assert.Equal(t, domain.VerdictStatusFailed, v.Status)
	assert.Equal(t, 100, v.LocationMatchScore)
}

func TestEvaluate_HazmatMentionedOnLoad(t *testing.T) {
	bol := baseBOL()
	bol.IsHazmat = true
	load := baseLoad()
	load.Notes = "HAZMAT placards required"

	v := newEngine().Evaluate(&validator.Input{BOL: bol, References: refs("PO-778"), Load: load})
	assert.False(t, v.HasHazmatMismatch)
	assert.Equal(t, domain.VerdictStatusPassed, v.Status)
}

func TestEvaluate_Location(t *testing.T) {
	t.Run("one mismatch drops below threshold", func(t *testing.T) {
		load := baseLoad()
		load.DeliveryAddress = json.RawMessage(`{"city": "Houston", "state": "TX"}`)
		v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), References: refs("PO-778"), Load: load})
		assert.Equal(t, 75, v.LocationMatchScore)
		assert.Equal(t, domain.VerdictStatusWarning, v.Status)
		require.Len(t, v.Reasons, 1)
		assert.Contains(t, v.Reasons[0], "Delivery city")
	})

	t.Run("all four mismatch floors at zero", func(t *testing.T) {
		load := baseLoad()
		load.PickupAddress = json.RawMessage(`{"city": "Gary", "state": "IN"}`)
		load.DeliveryAddress = json.RawMessage(`{"city": "Tulsa", "state": "OK"}`)
		v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), References: refs("PO-778"), Load: load})
		assert.Equal(t, 0, v.LocationMatchScore)
		assert.Len(t, v.Reasons, 4)
	})

	t.Run("bare string address is skipped", func(t *testing.T) {
		load := baseLoad()
		load.PickupAddress = json.RawMessage(`"1 Dock Rd, Gary, IN 46401"`)
		v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), References: refs("PO-778"), Load: load})
		assert.Equal(t, 100, v.LocationMatchScore)
	})

	t.Run("blank side is skipped", func(t *testing.T) {
		bol := baseBOL()
		bol.ShipperCity = ""
		load := baseLoad()
		load.PickupAddress = json.RawMessage(`{"city": "Gary", "state": "IL"}`)
		load.DeliveryAddress = nil
		v := newEngine().Evaluate(&validator.Input{BOL: bol, References: refs("PO-778"), Load: load})
		assert.Equal(t, 100, v.LocationMatchScore)
	})
}

func TestEvaluate_PO(t *testing.T) {
	t.Run("found in references", func(t *testing.T) {
		v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), References: refs("SEAL-1", "po-778"), Load: baseLoad()})
		assert.False(t, v.HasPOMismatch)
	})

	t.Run("contained in BOL number", func(t *testing.T) {
		bol := baseBOL()
		bol.BOLNumber = "BOL-PO-778-A"
		v := newEngine().Evaluate(&validator.Input{BOL: bol, Load: baseLoad()})
		assert.False(t, v.HasPOMismatch)
	})

	t.Run("candidate contained in reference", func(t *testing.T) {
		load := baseLoad()
		load.BrokerReference = str("REF PRO-445566 / 2025")
		v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), Load: load})
		assert.False(t, v.HasPOMismatch)
	})

	t.Run("missing reference warns", func(t *testing.T) {
		v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), References: refs("PO-999"), Load: baseLoad()})
		assert.True(t, v.HasPOMismatch)
		assert.Equal(t, domain.VerdictStatusWarning, v.Status)
		require.Len(t, v.Reasons, 1)
		assert.Contains(t, v.Reasons[0], "PO-778")
	})

	t.Run("no broker reference skips check", func(t *testing.T) {
		load := baseLoad()
		load.BrokerReference = str("  ")
		v := newEngine().Evaluate(&validator.Input{BOL: baseBOL(), Load: load})
		assert.False(t, v.HasPOMismatch)
		assert.Equal(t, domain.VerdictStatusPassed, v.Status)
	})
}

func TestEvaluate_OtherReasonsWarn(t *testing.T) {
	registry := validator.DefaultRegistry()
	registry.Register(noteValidator{})
	engine := validator.NewEngine(registry, nil, nil, nil, zerolog.Nop())

	v := engine.Evaluate(&validator.Input{BOL: baseBOL(), References: refs("PO-778"), Load: baseLoad()})
	assert.Equal(t, domain.VerdictStatusWarning, v.Status)
	assert.Equal(t, []string{"receiver signature missing"}, []string(v.Reasons))
}

func TestEvaluate_Idempotent(t *testing.T) {
	bol := baseBOL()
	bol.TotalWeightLbs = f64(38000)
	load := baseLoad()
	load.DeliveryAddress = json.RawMessage(`{"city": "Houston", "state": "TX"}`)
	in := &validator.Input{BOL: bol, References: refs("PO-1"), Load: load}

	first := newEngine().Evaluate(in)
	second := newEngine().Evaluate(in)
	assert.Equal(t, first, second)
}

type noteValidator struct{}

func (noteValidator) RuleKey() string  { return "receiver_signature" }
func (noteValidator) RuleName() string { return "Receiver signature" }
func (noteValidator) Validate(_ *validator.Input, sc *validator.Scorecard) {
	sc.AddReason(validator.CauseOther, "receiver signature missing")
}

func TestEngine_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists verdict", func(t *testing.T) {
		loadRepo := new(mocks.MockLoadRepo)
		verdictRepo := new(mocks.MockValidationVerdictRepo)
		engine := validator.NewEngine(validator.DefaultRegistry(), nil, loadRepo, verdictRepo, zerolog.Nop())

		bol := baseBOL()
		load := baseLoad()
		bol.LoadID = &load.ID
		loadRepo.On("GetByID", ctx, bol.OrganizationID, load.ID).Return(load, nil)
		verdictRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.ValidationVerdict")).Return(nil)

		v, err := engine.Validate(ctx, bol, refs("PO-778"))
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictStatusPassed, v.Status)
		assert.Equal(t, load.ID, v.LoadID)
		verdictRepo.AssertExpectations(t)
	})

	t.Run("no linked load", func(t *testing.T) {
		engine := validator.NewEngine(validator.DefaultRegistry(), nil, nil, nil, zerolog.Nop())
		_, err := engine.Validate(ctx, baseBOL(), nil)
		assert.ErrorIs(t, err, domain.ErrNoLinkedLoad)
	})

	t.Run("load lookup failure", func(t *testing.T) {
		loadRepo := new(mocks.MockLoadRepo)
		verdictRepo := new(mocks.MockValidationVerdictRepo)
		engine := validator.NewEngine(validator.DefaultRegistry(), nil, loadRepo, verdictRepo, zerolog.Nop())

		bol := baseBOL()
		loadID := uuid.New()
		bol.LoadID = &loadID
		loadRepo.On("GetByID", ctx, bol.OrganizationID, loadID).Return(nil, domain.ErrLoadNotFound)

		v, err := engine.Validate(ctx, bol, nil)
		assert.Nil(t, v)
		var lookup *domain.LookupFailure
		require.ErrorAs(t, err, &lookup)
		assert.Equal(t, "load", lookup.Entity)
		assert.ErrorIs(t, err, domain.ErrLoadNotFound)
		verdictRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("upsert failure returns verdict", func(t *testing.T) {
		loadRepo := new(mocks.MockLoadRepo)
		verdictRepo := new(mocks.MockValidationVerdictRepo)
		engine := validator.NewEngine(validator.DefaultRegistry(), nil, loadRepo, verdictRepo, zerolog.Nop())

		bol := baseBOL()
		load := baseLoad()
		bol.LoadID = &load.ID
		loadRepo.On("GetByID", ctx, bol.OrganizationID, load.ID).Return(load, nil)
		verdictRepo.On("Upsert", ctx, mock.Anything).Return(errors.New("db down"))

		v, err := engine.Validate(ctx, bol, refs("PO-778"))
		require.NotNil(t, v)
		var pf *domain.PersistenceFailure
		require.ErrorAs(t, err, &pf)
		assert.Equal(t, "validation_verdict", pf.Stage)
	})
}

func TestEngine_ValidateByID(t *testing.T) {
	ctx := context.Background()
	bolRepo := new(mocks.MockBillOfLadingRepo)
	loadRepo := new(mocks.MockLoadRepo)
	verdictRepo := new(mocks.MockValidationVerdictRepo)
	engine := validator.NewEngine(validator.DefaultRegistry(), bolRepo, loadRepo, verdictRepo, zerolog.Nop())

	bol := baseBOL()
	load := baseLoad()
	bol.LoadID = &load.ID
	bolRepo.On("GetByID", ctx, bol.OrganizationID, bol.ID).Return(bol, nil)
	bolRepo.On("ListReferences", ctx, bol.ID).Return(refs("PO-999"), nil)
	loadRepo.On("GetByID", ctx, bol.OrganizationID, load.ID).Return(load, nil)
	verdictRepo.On("Upsert", ctx, mock.Anything).Return(nil)

	v, err := engine.ValidateByID(ctx, bol.OrganizationID, bol.ID)
	require.NoError(t, err)
	assert.True(t, v.HasPOMismatch)
	assert.Equal(t, domain.VerdictStatusWarning, v.Status)
}
