package term

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteTerm removes the term with exactly the given id.
// Returns domain.ErrNotFound when nothing was deleted.
func (s *Service) DeleteTerm(ctx context.Context, input DeleteTermInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.terms.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete term: %w", err)
	}

	s.log.InfoContext(ctx, "term deleted", slog.String("term_id", input.ID))

	return nil
}
