package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/dialects-backend/internal/domain"
)

type completionGateway interface {
	Complete(ctx context.Context, provider, message string) (string, error)
}

type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
}

// Config holds the chat service settings.
type Config struct {
	DefaultProvider string
	// LogMessages enables the best-effort message log.
	LogMessages bool
	// LogTimeout bounds a single message log write.
	LogTimeout time.Duration
}

// Service proxies chat messages to completion providers.
type Service struct {
	gateway  completionGateway
	messages messageRepo
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new chat service.
func NewService(
	log *slog.Logger,
	gateway completionGateway,
	messages messageRepo,
	cfg Config,
) *Service {
	return &Service{
		gateway:  gateway,
		messages: messages,
		cfg:      cfg,
		log:      log.With("service", "chat"),
		now:      time.Now,
	}
}
