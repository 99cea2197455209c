package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/dialects-backend/internal/config"
)

// PruneMessages deletes logged chat exchanges older than the configured
// retention period and returns the number removed.
func PruneMessages(ctx context.Context, cfg *config.Config, logger *slog.Logger, now time.Time) (int64, error) {
	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return 0, fmt.Errorf("open store: %w", err)
	}
	defer st.close()

	threshold := now.AddDate(0, 0, -cfg.Chat.RetentionDays)

	deleted, err := st.messages.DeleteOlderThan(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete messages before %s: %w", threshold.Format(time.RFC3339), err)
	}

	logger.Info("message log pruned",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)

	return deleted, nil
}
