package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freightdoc/internal/config"
	"freightdoc/internal/detention"
	"freightdoc/internal/domain"
	"freightdoc/internal/port"
	"freightdoc/internal/resolve"
	"freightdoc/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceDetails are optional caller overrides for a generated invoice.
type InvoiceDetails struct {
	RatePerHour     *float64 `json:"rate_per_hour"`
	Currency        string   `json:"currency"`
	PONumber        string   `json:"po_number"`
	BOLNumber       string   `json:"bol_number"`
	BrokerEmail     string   `json:"broker_email"`
	FacilityName    string   `json:"facility_name"`
	FacilityAddress string   `json:"facility_address"`
}

// GenerateInvoiceInput is the DTO for pricing a detention record.
type GenerateInvoiceInput struct {
	OrganizationID    uuid.UUID
	DetentionRecordID uuid.UUID
	StopID            *uuid.UUID
	Details           *InvoiceDetails
}

// RegisterExport describes an uploaded invoice register.
type RegisterExport struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Invoices int    `json:"invoices"`
}

// DetentionService defines the detention billing contract.
type DetentionService interface {
	GenerateInvoice(ctx context.Context, input *GenerateInvoiceInput) (*domain.DetentionInvoice, error)
	SendInvoice(ctx context.Context, orgID, invoiceID uuid.UUID) (*domain.DetentionInvoice, error)
	ExportRegister(ctx context.Context, orgID uuid.UUID) (*RegisterExport, error)
}

type detentionService struct {
	detentionRepo port.DetentionRepository
	loadRepo      port.LoadRepository
	rcRepo        port.RateConfirmationRepository
	storage       port.ObjectStorage
	email         port.EmailSender
	cfg           config.EngineConfig
	s3Cfg         config.S3Config
	log           zerolog.Logger
}

// NewDetentionService creates a new DetentionService implementation.
func NewDetentionService(
	detentionRepo port.DetentionRepository,
	loadRepo port.LoadRepository,
	rcRepo port.RateConfirmationRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	cfg config.EngineConfig,
	s3Cfg config.S3Config,
	log zerolog.Logger,
) DetentionService {
	return &detentionService{
		detentionRepo: detentionRepo,
		loadRepo:      loadRepo,
		rcRepo:        rcRepo,
		storage:       storage,
		email:         email,
		cfg:           cfg,
		s3Cfg:         s3Cfg,
		log:           log.With().Str("component", "detention").Logger(),
	}
}

// GenerateInvoice prices a detention record and stores the invoice as
// APPROVED. Supporting lookups that fail fall through to the next source.
func (s *detentionService) GenerateInvoice(ctx context.Context, input *GenerateInvoiceInput) (*domain.DetentionInvoice, error) {
	rec, err := s.detentionRepo.GetRecord(ctx, input.OrganizationID, input.DetentionRecordID)
	if err != nil {
		return nil, err
	}

	var over detention.Overrides
	if d := input.Details; d != nil {
		over = detention.Overrides{
			RatePerHour:     d.RatePerHour,
			Currency:        d.Currency,
			PONumber:        d.PONumber,
			BOLNumber:       d.BOLNumber,
			BrokerEmail:     d.BrokerEmail,
			FacilityName:    d.FacilityName,
			FacilityAddress: d.FacilityAddress,
		}
	}

	stopID := input.StopID
	if stopID == nil {
		stopID = rec.StopID
	}

	calc, err := detention.Calculate(s.cfg, rec, over, s.sources(ctx, rec, stopID))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv := &domain.DetentionInvoice{
		ID:                uuid.New(),
		OrganizationID:    rec.OrganizationID,
		DetentionRecordID: rec.ID,
		LoadID:            rec.LoadID,
		InvoiceNumber:     fmt.Sprintf("%s-%s-%d", s.cfg.InvoicePrefix, now.Format("20060102"), now.UnixMilli()),
		FacilityName:      calc.FacilityName,
		FacilityAddress:   calc.FacilityAddress,
		StartTime:         *rec.StartTime,
		EndTime:           *rec.EndTime,
		TotalHours:        calc.TotalHours,
		FreeTimeHours:     calc.FreeTimeHours,
		PayableHours:      calc.PayableHours,
		RatePerHour:       calc.RatePerHour,
		TotalDue:          calc.TotalDue,
		Currency:          calc.Currency,
		PONumber:          over.PONumber,
		BOLNumber:         over.BOLNumber,
		BrokerEmail:       over.BrokerEmail,
		Status:            domain.InvoiceStatusApproved,
		GeneratedDate:     now,
	}

	if err := s.detentionRepo.CreateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("storing detention invoice: %w", err)
	}

	s.log.Info().
		Str("invoice_id", inv.ID.String()).
		Str("invoice_number", inv.InvoiceNumber).
		Str("detention_record_id", rec.ID.String()).
		Float64("total_due", inv.TotalDue).
		Msg("detentionService.GenerateInvoice: invoice created")
	return inv, nil
}

// sources builds the lazy fallbacks for rate and facility. Each lookup runs at
// most once per invoice.
func (s *detentionService) sources(ctx context.Context, rec *domain.DetentionRecord, stopID *uuid.UUID) detention.Sources {
	var src detention.Sources
	orgID := rec.OrganizationID

	if rec.LoadID != nil {
		loadID := *rec.LoadID
		src.LoadDetentionRate = resolve.Once(func() (float64, bool) {
			load, err := s.loadRepo.GetByID(ctx, orgID, loadID)
			if err != nil {
				s.lookupFailed(&domain.LookupFailure{Entity: "load", Key: loadID.String(), Err: err})
				return 0, false
			}
			return resolve.Positive(load.DetentionRate)()
		})
		src.FirstStopOfLoad = func() (detention.Facility, bool) {
			stop, err := s.rcRepo.FirstStopForLoad(ctx, orgID, loadID)
			if err != nil {
				s.lookupFailed(&domain.LookupFailure{Entity: "first_stop", Key: loadID.String(), Err: err})
				return detention.Facility{}, false
			}
			return detention.Facility{Name: stop.FacilityName, Address: stop.Address}, true
		}
	}

	if stopID != nil {
		id := *stopID
		src.Stop = func() (detention.Facility, bool) {
			stop, err := s.rcRepo.GetStop(ctx, orgID, id)
			if err != nil {
				s.lookupFailed(&domain.LookupFailure{Entity: "stop", Key: id.String(), Err: err})
				return detention.Facility{}, false
			}
			return detention.Facility{Name: stop.FacilityName, Address: stop.Address}, true
		}
	}
	return src
}

func (s *detentionService) lookupFailed(err *domain.LookupFailure) {
	ev := s.log.Warn()
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrLoadNotFound) || errors.Is(err, domain.ErrStopNotFound) {
		ev = s.log.Debug()
	}
	ev.Err(err).Str("entity", err.Entity).Msg("detentionService: lookup failed, using fallback")
}

// SendInvoice emails an APPROVED invoice to the broker and marks it SENT.
// The status is left unchanged when delivery fails.
func (s *detentionService) SendInvoice(ctx context.Context, orgID, invoiceID uuid.UUID) (*domain.DetentionInvoice, error) {
	inv, err := s.detentionRepo.GetInvoice(ctx, orgID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvoiceStatusApproved {
		return nil, domain.ErrInvalidStatusTransition
	}
	if inv.BrokerEmail == "" {
		return nil, domain.ErrMissingRecipient
	}

	msg := &port.InvoiceEmail{
		ToEmail:         inv.BrokerEmail,
		InvoiceNumber:   inv.InvoiceNumber,
		FacilityName:    inv.FacilityName,
		FacilityAddress: inv.FacilityAddress,
		StartTime:       inv.StartTime,
		EndTime:         inv.EndTime,
		TotalHours:      inv.TotalHours,
		FreeTimeHours:   inv.FreeTimeHours,
		PayableHours:    inv.PayableHours,
		RatePerHour:     inv.RatePerHour,
		TotalDue:        inv.TotalDue,
		Currency:        inv.Currency,
		PONumber:        inv.PONumber,
		BOLNumber:       inv.BOLNumber,
		EvidenceURL:     s.evidenceURL(ctx, orgID, inv.DetentionRecordID),
	}

	if err := s.email.SendDetentionInvoice(ctx, msg); err != nil {
		return nil, fmt.Errorf("sending detention invoice: %w", err)
	}

	sentAt := time.Now().UTC()
	if err := s.detentionRepo.MarkInvoiceSent(ctx, orgID, inv.ID, sentAt); err != nil {
		return nil, fmt.Errorf("marking invoice sent: %w", err)
	}
	inv.Status = domain.InvoiceStatusSent
	inv.SentAt = &sentAt

	s.log.Info().
		Str("invoice_id", inv.ID.String()).
		Str("to", inv.BrokerEmail).
		Msg("detentionService.SendInvoice: invoice sent")
	return inv, nil
}

// evidenceURL presigns the record's photo. An empty string means no link.
func (s *detentionService) evidenceURL(ctx context.Context, orgID, recordID uuid.UUID) string {
	rec, err := s.detentionRepo.GetRecord(ctx, orgID, recordID)
	if err != nil {
		s.log.Warn().Err(err).Str("detention_record_id", recordID.String()).Msg("detentionService: evidence lookup failed")
		return ""
	}
	if rec.EvidencePhotoKey == nil || *rec.EvidencePhotoKey == "" {
		return ""
	}
	url, err := s.storage.GetPresignedURL(ctx, s.s3Cfg.Bucket, *rec.EvidencePhotoKey, s.cfg.EvidenceURLExpirySecs)
	if err != nil {
		s.log.Warn().Err(err).Str("key", *rec.EvidencePhotoKey).Msg("detentionService: presigning evidence failed")
		return ""
	}
	return url
}

// ExportRegister writes every invoice of the organization to an XLSX file in
// object storage and returns a presigned download link.
func (s *detentionService) ExportRegister(ctx context.Context, orgID uuid.UUID) (*RegisterExport, error) {
	invoices, err := s.detentionRepo.ListInvoices(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	now := time.Now().UTC()
	data, err := xlsxexport.WriteInvoiceRegister(invoices, now)
	if err != nil {
		return nil, fmt.Errorf("building invoice register: %w", err)
	}

	filename := fmt.Sprintf("detention-register-%s.xlsx", now.Format("20060102-150405"))
	key := fmt.Sprintf("exports/%s/%s", orgID, filename)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: xlsxContentType,
		Filename:    filename,
	}); err != nil {
		return nil, fmt.Errorf("uploading invoice register: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3Cfg.Bucket, key, s.s3Cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning invoice register: %w", err)
	}

	s.log.Info().Str("key", key).Int("invoices", len(invoices)).Msg("detentionService.ExportRegister: register uploaded")
	return &RegisterExport{Key: key, URL: url, Invoices: len(invoices)}, nil
}
