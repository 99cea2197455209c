package term

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/dialects-backend/internal/domain"
)

// AddTerm validates and stores a new term. The id is generated unless the
// client supplied one; created_at is always assigned here.
func (s *Service) AddTerm(ctx context.Context, input AddTermInput) (*domain.Term, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input.Normalize()

	t := &domain.Term{
		ID:            in.ID,
		Term:          in.Term,
		Meaning:       in.Meaning,
		Dialect:       in.Dialect,
		Category:      in.Category,
		Understanding: in.Understanding,
		Response:      in.Response,
		AIProvider:    in.AIProvider,
		CreatedAt:     s.now().UTC(),
	}
	clientID := t.ID != ""
	if !clientID {
		t.ID = s.newID()
	}
	if t.AIProvider == "" {
		t.AIProvider = s.cfg.DefaultProvider
	}

	if err := s.terms.Create(ctx, t); err != nil {
		if clientID && errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("id", "already exists")
		}
		return nil, fmt.Errorf("create term: %w", err)
	}

	s.log.InfoContext(ctx, "term added",
		slog.String("term_id", t.ID),
		slog.String("ai_provider", t.AIProvider),
	)

	return t, nil
}
