// @title Freight Document Engine API
// @version 1.0
// @description Normalizes extracted freight documents, validates bills of lading against loads and bills detention.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"freightdoc/internal/config"
	"freightdoc/internal/email/noop"
	"freightdoc/internal/email/ses"
	"freightdoc/internal/handler"
	"freightdoc/internal/logger"
	"freightdoc/internal/port"
	"freightdoc/internal/repository/postgres"
	"freightdoc/internal/router"
	"freightdoc/internal/service"
	s3storage "freightdoc/internal/storage/s3"
	"freightdoc/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appLog := logger.New(cfg.Server.Environment, cfg.Log.Level, cfg.Log.Format)
	log.Logger = appLog
	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	rcRepo := postgres.NewRateConfirmationRepo(db)
	bolRepo := postgres.NewBillOfLadingRepo(db)
	loadRepo := postgres.NewLoadRepo(db)
	verdictRepo := postgres.NewValidationVerdictRepo(db)
	notifRepo := postgres.NewNotificationRepo(db)
	detentionRepo := postgres.NewDetentionRepo(db)

	// Initialize storage and email
	s3Client, err := s3storage.NewS3Client(context.Background(), &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	emailSender, err := newEmailSender(&cfg.Email, appLog)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	engine := validator.NewEngine(validator.DefaultRegistry(), bolRepo, loadRepo, verdictRepo, appLog)
	ingestionSvc := service.NewIngestionService(rcRepo, bolRepo, notifRepo, engine, appLog)
	rcSvc := service.NewRateConfirmationService(rcRepo, notifRepo, appLog)
	bolSvc := service.NewBillOfLadingService(bolRepo, verdictRepo, engine)
	detentionSvc := service.NewDetentionService(
		detentionRepo, loadRepo, rcRepo, s3Client, emailSender, cfg.Engine, cfg.S3, appLog,
	)

	// Setup router
	r := router.Setup(router.Handlers{
		Health:           handler.NewHealthHandler(db),
		Ingestion:        handler.NewIngestionHandler(ingestionSvc),
		RateConfirmation: handler.NewRateConfirmationHandler(rcSvc),
		BillOfLading:     handler.NewBillOfLadingHandler(bolSvc),
		Detention:        handler.NewDetentionHandler(detentionSvc),
	}, cfg.Server.AllowedOrigins, appLog)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLog.Info().Str("addr", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLog.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newEmailSender(cfg *config.EmailConfig, appLog zerolog.Logger) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
	case "noop", "":
		return noop.NewNoopSender(appLog), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
