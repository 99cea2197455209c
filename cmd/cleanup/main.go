// Command cleanup removes logged chat exchanges older than the configured
// retention period (chat.retention_days). It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/dialects-backend/internal/app"
	"github.com/heartmarshall/dialects-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := app.PruneMessages(ctx, cfg, logger, time.Now()); err != nil {
		logger.Error("message cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
