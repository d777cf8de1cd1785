package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightdoc/internal/domain"
	"freightdoc/internal/service"
	"freightdoc/mocks"
)

func setupRateConfirmation() (service.RateConfirmationService, *mocks.MockRateConfirmationRepo, *mocks.MockNotificationRepo) {
	rcRepo := new(mocks.MockRateConfirmationRepo)
	notifRepo := new(mocks.MockNotificationRepo)
	return service.NewRateConfirmationService(rcRepo, notifRepo, zerolog.Nop()), rcRepo, notifRepo
}

func TestRateConfirmationService_Get(t *testing.T) {
	svc, rcRepo, _ := setupRateConfirmation()
	orgID, id := uuid.New(), uuid.New()
	rc := &domain.RateConfirmation{ID: id, OrganizationID: orgID, LoadNumber: "L-1"}

	rcRepo.On("GetByID", mock.Anything, orgID, id).Return(rc, nil)
	rcRepo.On("ListStops", mock.Anything, id).Return([]domain.Stop{{SequenceNumber: 1}, {SequenceNumber: 2}}, nil)
	rcRepo.On("ListReferenceNumbers", mock.Anything, id).Return([]domain.ReferenceNumber{}, nil)
	rcRepo.On("ListCharges", mock.Anything, id).Return([]domain.Charge{{Position: 1}}, nil)
	rcRepo.On("ListRiskClauses", mock.Anything, id).Return([]domain.RiskClause{}, nil)
	rcRepo.On("ListDispatchInstructions", mock.Anything, id).Return([]domain.DispatchInstruction{}, nil)

	set, err := svc.Get(context.Background(), orgID, id)

	require.NoError(t, err)
	assert.Equal(t, "L-1", set.RateConfirmation.LoadNumber)
	assert.Len(t, set.Stops, 2)
	assert.Len(t, set.Charges, 1)
}

func TestRateConfirmationService_Get_NotFound(t *testing.T) {
	svc, rcRepo, _ := setupRateConfirmation()

	rcRepo.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrRateConfirmationNotFound)

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrRateConfirmationNotFound)
}

func TestRateConfirmationService_Accept(t *testing.T) {
	svc, rcRepo, _ := setupRateConfirmation()
	orgID, id := uuid.New(), uuid.New()

	rcRepo.On("GetByID", mock.Anything, orgID, id).
		Return(&domain.RateConfirmation{ID: id, Status: domain.RateConfirmationStatusUnderReview}, nil)
	rcRepo.On("UpdateStatus", mock.Anything, orgID, id,
		domain.RateConfirmationStatusUnderReview, domain.RateConfirmationStatusAccepted).Return(nil)

	rc, err := svc.Accept(context.Background(), orgID, id)

	require.NoError(t, err)
	assert.Equal(t, domain.RateConfirmationStatusAccepted, rc.Status)
	rcRepo.AssertExpectations(t)
}

func TestRateConfirmationService_Reject_AlreadyDecided(t *testing.T) {
	svc, rcRepo, _ := setupRateConfirmation()
	orgID, id := uuid.New(), uuid.New()

	rcRepo.On("GetByID", mock.Anything, orgID, id).
		Return(&domain.RateConfirmation{ID: id, Status: domain.RateConfirmationStatusAccepted}, nil)

	_, err := svc.Reject(context.Background(), orgID, id)

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	rcRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRateConfirmationService_Reject_ConcurrentDecision(t *testing.T) {
	svc, rcRepo, _ := setupRateConfirmation()
	orgID, id := uuid.New(), uuid.New()

	rcRepo.On("GetByID", mock.Anything, orgID, id).
		Return(&domain.RateConfirmation{ID: id, Status: domain.RateConfirmationStatusUnderReview}, nil)
	rcRepo.On("UpdateStatus", mock.Anything, orgID, id, mock.Anything, mock.Anything).
		Return(domain.ErrInvalidStatusTransition)

	_, err := svc.Reject(context.Background(), orgID, id)

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestRateConfirmationService_ListNotifications(t *testing.T) {
	svc, rcRepo, notifRepo := setupRateConfirmation()
	orgID, id := uuid.New(), uuid.New()

	rcRepo.On("GetByID", mock.Anything, orgID, id).Return(&domain.RateConfirmation{ID: id}, nil)
	notifRepo.On("ListByRateConfirmation", mock.Anything, orgID, id).
		Return([]domain.ScheduledNotification{{Title: "Notify"}}, nil)

	list, err := svc.ListNotifications(context.Background(), orgID, id)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Notify", list[0].Title)
}

func TestBillOfLadingService_GetVerdict(t *testing.T) {
	bolRepo := new(mocks.MockBillOfLadingRepo)
	verdictRepo := new(mocks.MockValidationVerdictRepo)
	svc := service.NewBillOfLadingService(bolRepo, verdictRepo, nil)
	orgID, id := uuid.New(), uuid.New()

	bolRepo.On("GetByID", mock.Anything, orgID, id).Return(&domain.BillOfLading{ID: id}, nil)
	verdictRepo.On("GetByBOL", mock.Anything, orgID, id).
		Return(&domain.ValidationVerdict{BOLID: id, Status: domain.VerdictStatusWarning}, nil)

	v, err := svc.GetVerdict(context.Background(), orgID, id)

	require.NoError(t, err)
	assert.Equal(t, domain.VerdictStatusWarning, v.Status)
}

func TestBillOfLadingService_Get_ChildError(t *testing.T) {
	bolRepo := new(mocks.MockBillOfLadingRepo)
	svc := service.NewBillOfLadingService(bolRepo, nil, nil)
	orgID, id := uuid.New(), uuid.New()

	bolRepo.On("GetByID", mock.Anything, orgID, id).Return(&domain.BillOfLading{ID: id}, nil)
	bolRepo.On("ListLineItems", mock.Anything, id).Return(nil, errors.New("db down"))

	_, err := svc.Get(context.Background(), orgID, id)

	assert.ErrorContains(t, err, "listing line items")
}
