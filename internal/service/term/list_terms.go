package term

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dialects-backend/internal/domain"
)

// ListTerms returns all terms, newest first. With DegradeListOnError set, a
// store failure is logged and an empty list is returned instead.
func (s *Service) ListTerms(ctx context.Context) ([]domain.Term, error) {
	terms, err := s.terms.List(ctx)
	if err != nil {
		if s.cfg.DegradeListOnError {
			s.log.ErrorContext(ctx, "list terms failed, returning empty list",
				slog.String("error", err.Error()),
			)
			return []domain.Term{}, nil
		}
		return nil, fmt.Errorf("list terms: %w", err)
	}

	return terms, nil
}
