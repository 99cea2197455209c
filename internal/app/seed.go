package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/dialects-backend/internal/config"
	"github.com/heartmarshall/dialects-backend/internal/domain"
	termsvc "github.com/heartmarshall/dialects-backend/internal/service/term"
)

// SeedResult summarizes a glossary import.
type SeedResult struct {
	Added   int
	Skipped int
	Invalid int
}

// SeedTerms imports a JSON array of terms through the term service, so
// records get the same validation, id and timestamp rules as POST /terms.
// Records whose id already exists are skipped; invalid records are counted
// and logged. With dryRun set, records are only validated.
func SeedTerms(ctx context.Context, cfg *config.Config, logger *slog.Logger, r io.Reader, dryRun bool) (SeedResult, error) {
	var records []termsvc.AddTermInput
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return SeedResult{}, fmt.Errorf("decode glossary: %w", err)
	}

	var res SeedResult

	if dryRun {
		for i, rec := range records {
			if err := rec.Validate(); err != nil {
				logger.Warn("invalid record", slog.Int("index", i), slog.String("error", err.Error()))
				res.Invalid++
				continue
			}
			res.Added++
		}
		return res, nil
	}

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return res, fmt.Errorf("open store: %w", err)
	}
	defer st.close()

	svc := termsvc.NewService(logger, st.terms, termsvc.Config{
		DefaultProvider: cfg.Providers.Default,
	})

	for i, rec := range records {
		_, err := svc.AddTerm(ctx, rec)
		var ve *domain.ValidationError
		switch {
		case err == nil:
			res.Added++
		case errors.As(err, &ve) && ve.Field().Field == "id" && ve.Field().Message == "already exists":
			res.Skipped++
		case errors.Is(err, domain.ErrValidation):
			logger.Warn("invalid record", slog.Int("index", i), slog.String("error", err.Error()))
			res.Invalid++
		default:
			return res, fmt.Errorf("add record %d: %w", i, err)
		}
	}

	logger.Info("glossary imported",
		slog.Int("added", res.Added),
		slog.Int("skipped", res.Skipped),
		slog.Int("invalid", res.Invalid),
	)

	return res, nil
}
