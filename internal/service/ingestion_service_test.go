package service_test

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
	"freightdoc/internal/service"
	"freightdoc/internal/validator"
	"freightdoc/mocks"
)

const rateConPayload = `{
	"load_details": {"load_number": "L-1"},
	"financials": {"charges": [{"description": "Line haul", "amount": 100}]},
	"stops": [{"stop_type": "Pickup", "facility_name": "Dock A"}],
	"reference_numbers": [{"type": "PO", "value": "PO-1"}],
	"clauses_found": [
		{"traffic_light": "RED", "title_en": "Detention", "notification": {"title": "Notify", "trigger_type": "Absolute", "deadline_iso": "2025-04-01"}},
		{"traffic_light": "GREEN", "notification": {"title": "Call", "trigger_type": "Relative", "relative_minutes_offset": 30}}
	],
	"driver_dispatch_instructions": ["Call on arrival"]
}`

const bolPayload = `{
	"bol_number": "BOL-1",
	"parties": {
		"shipper": {"name": "Dock A", "city": "Chicago", "state": "IL"},
		"consignee": {"name": "DC", "city": "Dallas", "state": "TX"}
	},
	"references": {"po_numbers": ["PO-778"]},
	"freight_summary": {"total_weight_lbs": 40000},
	"freight_line_items": [{"description": "Poultry", "weight_lbs": 40000}]
}`

type ingestionDeps struct {
	rcRepo      *mocks.MockRateConfirmationRepo
	bolRepo     *mocks.MockBillOfLadingRepo
	notifRepo   *mocks.MockNotificationRepo
	loadRepo    *mocks.MockLoadRepo
	verdictRepo *mocks.MockValidationVerdictRepo
}

func setupIngestion() (service.IngestionService, *ingestionDeps) {
	d := &ingestionDeps{
		rcRepo:      new(mocks.MockRateConfirmationRepo),
		bolRepo:     new(mocks.MockBillOfLadingRepo),
		notifRepo:   new(mocks.MockNotificationRepo),
		loadRepo:    new(mocks.MockLoadRepo),
		verdictRepo: new(mocks.MockValidationVerdictRepo),
	}
	engine := validator.NewEngine(validator.DefaultRegistry(), d.bolRepo, d.loadRepo, d.verdictRepo, zerolog.Nop())
	svc := service.NewIngestionService(d.rcRepo, d.bolRepo, d.notifRepo, engine, zerolog.Nop())
	return svc, d
}

func TestIngest_UnsupportedType(t *testing.T) {
	svc, _ := setupIngestion()

	_, err := svc.Ingest(context.Background(), &service.IngestInput{DocumentType: "invoice", Payload: []byte(`{}`)})

	assert.ErrorIs(t, err, domain.ErrUnsupportedDocumentType)
}

func TestIngestRateConfirmation_Success(t *testing.T) {
	svc, d := setupIngestion()
	orgID, docID, loadID := uuid.New(), uuid.New(), uuid.New()

	d.rcRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.RateConfirmation")).Return(nil)
	d.rcRepo.On("CreateStops", mock.Anything, mock.Anything).Return(nil)
	d.rcRepo.On("CreateReferenceNumbers", mock.Anything, mock.Anything).Return(nil)
	d.rcRepo.On("CreateCharges", mock.Anything, mock.Anything).Return(nil)
	d.rcRepo.On("CreateRiskClause", mock.Anything, mock.Anything).Return(nil).Twice()
	d.rcRepo.On("CreateDispatchInstructions", mock.Anything, mock.Anything).Return(nil)
	d.notifRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ScheduledNotification")).Return(nil).Twice()

	result, err := svc.Ingest(context.Background(), &service.IngestInput{
		OrganizationID: orgID,
		DocumentID:     docID,
		DocumentType:   domain.DocumentTypeRateConfirmation,
		LoadID:         &loadID,
		Payload:        []byte(rateConPayload),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeRateConfirmation, result.DocumentType)
	require.NotNil(t, result.RateConfirmation)
	assert.Equal(t, result.RecordID, result.RateConfirmation.RateConfirmation.ID)
	assert.Equal(t, &loadID, result.RateConfirmation.RateConfirmation.LoadID)
	assert.Equal(t, 2, result.Notifications)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.VerdictState)
	d.rcRepo.AssertExpectations(t)
	d.notifRepo.AssertExpectations(t)
}

func TestIngestRateConfirmation_ChildFailuresBecomeWarnings(t *testing.T) {
	svc, d := setupIngestion()

	d.rcRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	d.rcRepo.On("CreateStops", mock.Anything, mock.Anything).Return(errors.New("stops down"))
	d.rcRepo.On("CreateReferenceNumbers", mock.Anything, mock.Anything).Return(nil)
	d.rcRepo.On("CreateCharges", mock.Anything, mock.Anything).Return(nil)
	// the first clause fails, the second is still written
	d.rcRepo.On("CreateRiskClause", mock.Anything, mock.Anything).Return(errors.New("clause down")).Once()
	d.rcRepo.On("CreateRiskClause", mock.Anything, mock.Anything).Return(nil).Once()
	d.rcRepo.On("CreateDispatchInstructions", mock.Anything, mock.Anything).Return(nil)
	d.notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	d.notifRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()

	result, err := svc.IngestRateConfirmation(context.Background(), &service.IngestInput{
		OrganizationID: uuid.New(),
		DocumentID:     uuid.New(),
		DocumentType:   domain.DocumentTypeRateConfirmation,
		Payload:        []byte(rateConPayload),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Notifications)

	stages := make([]string, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		stages = append(stages, w.Stage)
	}
	assert.Equal(t, []string{service.StageStops, service.StageRiskClauses, service.StageNotifications}, stages)
	assert.Contains(t, result.Warnings[0].Message, "stops down")
	d.rcRepo.AssertNumberOfCalls(t, "CreateRiskClause", 2)
}

func TestIngestRateConfirmation_SkipsEmptyCollections(t *testing.T) {
	svc, d := setupIngestion()

	d.rcRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.IngestRateConfirmation(context.Background(), &service.IngestInput{
		OrganizationID: uuid.New(),
		DocumentID:     uuid.New(),
		Payload:        []byte(`{"load_details": {"load_number": "L-9"}}`),
	})

	require.NoError(t, err)
	assert.Empty(t, result.RateConfirmation.Stops)
	assert.Zero(t, result.Notifications)
	d.rcRepo.AssertNotCalled(t, "CreateStops", mock.Anything, mock.Anything)
}

func TestIngestRateConfirmation_MappingError(t *testing.T) {
	svc, d := setupIngestion()

	_, err := svc.IngestRateConfirmation(context.Background(), &service.IngestInput{Payload: []byte(`[1, 2]`)})

	var mapErr *domain.MappingError
	assert.True(t, errors.As(err, &mapErr))
	d.rcRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIngestRateConfirmation_HeaderFailure(t *testing.T) {
	svc, d := setupIngestion()

	d.rcRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDocumentAlreadyIngested)

	result, err := svc.IngestRateConfirmation(context.Background(), &service.IngestInput{
		OrganizationID: uuid.New(),
		DocumentID:     uuid.New(),
		Payload:        []byte(rateConPayload),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrDocumentAlreadyIngested)
	d.rcRepo.AssertNotCalled(t, "CreateStops", mock.Anything, mock.Anything)
	d.notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func bolInput(loadID *uuid.UUID) *service.IngestInput {
	return &service.IngestInput{
		OrganizationID: uuid.New(),
		DocumentID:     uuid.New(),
		DocumentType:   domain.DocumentTypeBillOfLading,
		LoadID:         loadID,
		Payload:        []byte(bolPayload),
	}
}

func matchingLoad(orgID, loadID uuid.UUID) *domain.Load {
	weight := 40000.0
	ref := "PO-778"
	return &domain.Load{
		ID:              loadID,
		OrganizationID:  orgID,
		BrokerReference: &ref,
		PickupAddress:   json.RawMessage(`{"city": "Chicago", "state": "IL"}`),
		DeliveryAddress: json.RawMessage(`{"city": "Dallas", "state": "TX"}`),
		Weight:          &weight,
	}
}

func TestIngestBillOfLading_NoLoad(t *testing.T) {
	svc, d := setupIngestion()

	d.bolRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.BillOfLading")).Return(nil)
	d.bolRepo.On("CreateLineItems", mock.Anything, mock.Anything).Return(nil)
	d.bolRepo.On("CreateReferences", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Ingest(context.Background(), bolInput(nil))

	require.NoError(t, err)
	assert.Equal(t, domain.VerdictStateNotApplicable, result.VerdictState)
	assert.Nil(t, result.Verdict)
	d.loadRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestBillOfLading_Validated(t *testing.T) {
	svc, d := setupIngestion()
	loadID := uuid.New()
	input := bolInput(&loadID)

	d.bolRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	d.bolRepo.On("CreateLineItems", mock.Anything, mock.Anything).Return(nil)
	d.bolRepo.On("CreateReferences", mock.Anything, mock.Anything).Return(nil)
	d.loadRepo.On("GetByID", mock.Anything, input.OrganizationID, loadID).
		Return(matchingLoad(input.OrganizationID, loadID), nil)
	d.verdictRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.ValidationVerdict")).Return(nil)

	result, err := svc.Ingest(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.VerdictStateComputed, result.VerdictState)
	require.NotNil(t, result.Verdict)
	assert.Equal(t, domain.VerdictStatusPassed, result.Verdict.Status)
	assert.Equal(t, result.RecordID, result.Verdict.BOLID)
	assert.Empty(t, result.Warnings)
}

func TestIngestBillOfLading_LoadLookupFails(t *testing.T) {
	svc, d := setupIngestion()
	loadID := uuid.New()

	d.bolRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	d.bolRepo.On("CreateLineItems", mock.Anything, mock.Anything).Return(nil)
	d.bolRepo.On("CreateReferences", mock.Anything, mock.Anything).Return(nil)
	d.loadRepo.On("GetByID", mock.Anything, mock.Anything, loadID).Return(nil, domain.ErrLoadNotFound)

	result, err := svc.Ingest(context.Background(), bolInput(&loadID))

	require.NoError(t, err)
	assert.Equal(t, domain.VerdictStateMissing, result.VerdictState)
	assert.Nil(t, result.Verdict)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, service.StageValidation, result.Warnings[0].Stage)
	d.verdictRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestIngestBillOfLading_VerdictWriteFails(t *testing.T) {
	svc, d := setupIngestion()
	loadID := uuid.New()
	input := bolInput(&loadID)

	d.bolRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	d.bolRepo.On("CreateLineItems", mock.Anything, mock.Anything).Return(errors.New("items down"))
	d.bolRepo.On("CreateReferences", mock.Anything, mock.Anything).Return(nil)
	d.loadRepo.On("GetByID", mock.Anything, mock.Anything, loadID).
		Return(matchingLoad(input.OrganizationID, loadID), nil)
	d.verdictRepo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("db down"))

	result, err := svc.Ingest(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.VerdictStateComputed, result.VerdictState)
	require.NotNil(t, result.Verdict)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, service.StageLineItems, result.Warnings[0].Stage)
	assert.Equal(t, service.StageValidation, result.Warnings[1].Stage)
}
