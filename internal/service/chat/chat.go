package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dialects-backend/internal/domain"
)

// Chat sends the message to the requested provider (or the default one) and
// returns its reply. A successful exchange is logged best-effort: a failed
// log write never changes the result. Nothing is logged when the exchange fails.
func (s *Service) Chat(ctx context.Context, input ChatInput) (*ChatResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	message := strings.TrimSpace(input.Message)
	provider := strings.TrimSpace(input.Provider)
	if provider == "" {
		provider = s.cfg.DefaultProvider
	}

	reply, err := s.gateway.Complete(ctx, provider, message)
	if err != nil {
		return nil, fmt.Errorf("chat via %s: %w", provider, err)
	}

	if s.cfg.LogMessages {
		s.logExchange(ctx, &domain.Message{
			UserMsg:    message,
			AIReply:    reply,
			AIProvider: provider,
			CreatedAt:  s.now().UTC(),
		})
	}

	return &ChatResult{Reply: reply, Provider: provider}, nil
}

// logExchange writes m detached from the request's cancellation, bounded by
// LogTimeout. Errors are logged and dropped.
func (s *Service) logExchange(ctx context.Context, m *domain.Message) {
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.LogTimeout)
	defer cancel()

	if err := s.messages.Create(logCtx, m); err != nil {
		s.log.WarnContext(ctx, "message log write failed",
			slog.String("provider", m.AIProvider),
			slog.String("error", err.Error()),
		)
	}
}
