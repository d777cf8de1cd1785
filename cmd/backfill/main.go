// Command backfill re-validates every bill of lading that is linked to a load,
// replacing stored verdicts, and writes the results to a CSV file.
// Usage: go run ./cmd/backfill [-org <uuid>] [-out <dir>]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"freightdoc/internal/config"
	"freightdoc/internal/csvexport"
	"freightdoc/internal/domain"
	"freightdoc/internal/logger"
	"freightdoc/internal/repository/postgres"
	"freightdoc/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("backfill failed")
	}
}

func run() error {
	orgFlag := flag.String("org", "", "limit to one organization (UUID)")
	outDir := flag.String("out", ".", "directory for the verdict CSV")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appLog := logger.New(cfg.Server.Environment, cfg.Log.Level, cfg.Log.Format)
	log.Logger = appLog

	var orgID *uuid.UUID
	if *orgFlag != "" {
		id, err := uuid.Parse(*orgFlag)
		if err != nil {
			return fmt.Errorf("parsing -org: %w", err)
		}
		orgID = &id
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	bolRepo := postgres.NewBillOfLadingRepo(db)
	engine := validator.NewEngine(
		validator.DefaultRegistry(),
		bolRepo,
		postgres.NewLoadRepo(db),
		postgres.NewValidationVerdictRepo(db),
		appLog,
	)

	ctx := context.Background()
	bols, err := bolRepo.ListLinked(ctx, orgID)
	if err != nil {
		return fmt.Errorf("listing linked bills of lading: %w", err)
	}

	path := filepath.Join(*outDir, csvexport.BuildFilename("bol_verdicts", time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	w := csvexport.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var validated, skipped int
	for i := range bols {
		bol := &bols[i]
		verdict, err := engine.ValidateByID(ctx, bol.OrganizationID, bol.ID)
		var pf *domain.PersistenceFailure
		switch {
		case err == nil:
		case errors.As(err, &pf) && verdict != nil:
			log.Warn().Err(err).Str("bol_id", bol.ID.String()).Msg("verdict computed but not stored")
		default:
			log.Warn().Err(err).Str("bol_id", bol.ID.String()).Msg("skipping bill of lading")
			skipped++
			continue
		}

		if err := w.WriteVerdict(bol.BOLNumber, verdict); err != nil {
			return fmt.Errorf("writing verdict for %s: %w", bol.ID, err)
		}
		validated++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	log.Info().
		Int("validated", validated).
		Int("skipped", skipped).
		Str("file", path).
		Msg("backfill complete")
	return nil
}
