package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dialects-backend/internal/domain"
)

type termRepo interface {
	Create(ctx context.Context, t *domain.Term) error
	List(ctx context.Context) ([]domain.Term, error)
	Delete(ctx context.Context, id string) error
}

// Config holds the term service settings.
type Config struct {
	// DefaultProvider is stored as ai_provider when a term does not name one.
	DefaultProvider string
	// DegradeListOnError turns a store failure in ListTerms into an empty list.
	DegradeListOnError bool
}

// Service provides dialect term operations.
type Service struct {
	terms termRepo
	cfg   Config
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

// NewService creates a new term service.
func NewService(
	log *slog.Logger,
	terms termRepo,
	cfg Config,
) *Service {
	return &Service{
		terms: terms,
		cfg:   cfg,
		log:   log.With("service", "term"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}
