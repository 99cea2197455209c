// Command seeder imports a glossary of dialect terms from a JSON file into
// the configured store. It is intended to be run offline, not as part of the
// main server.
//
// The file holds a JSON array of objects with the POST /terms fields
// (id, term, meaning, dialect, category, understanding, response, ai_provider).
//
// Flags:
//
//	--file     path to the glossary JSON file (required)
//	--dry-run  validate records without writing to the store
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/dialects-backend/internal/app"
	"github.com/heartmarshall/dialects-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the glossary JSON file")
	dryRunFlag := flag.Bool("dry-run", false, "validate records without writing to the store")
	flag.Parse()

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: seeder --file=terms.json [--dry-run]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	f, err := os.Open(*fileFlag)
	if err != nil {
		logger.Error("open glossary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	res, err := app.SeedTerms(ctx, cfg, logger, f, *dryRunFlag)
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRunFlag {
		logger.Info("dry run complete", slog.Int("valid", res.Added), slog.Int("invalid", res.Invalid))
	}
}
