package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/dialects-backend/internal/adapter/postgres"
	pgmessage "github.com/heartmarshall/dialects-backend/internal/adapter/postgres/message"
	pgterm "github.com/heartmarshall/dialects-backend/internal/adapter/postgres/term"
	"github.com/heartmarshall/dialects-backend/internal/adapter/sqlite"
	litemessage "github.com/heartmarshall/dialects-backend/internal/adapter/sqlite/message"
	liteterm "github.com/heartmarshall/dialects-backend/internal/adapter/sqlite/term"
	"github.com/heartmarshall/dialects-backend/internal/config"
	"github.com/heartmarshall/dialects-backend/internal/domain"
)

type termStore interface {
	Create(ctx context.Context, t *domain.Term) error
	List(ctx context.Context) ([]domain.Term, error)
	Delete(ctx context.Context, id string) error
}

type messageStore interface {
	Create(ctx context.Context, m *domain.Message) error
	DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error)
}

// store bundles the repositories of one database driver.
type store struct {
	terms    termStore
	messages messageStore
	ping     func(ctx context.Context) error
	close    func()
}

func (s *store) Ping(ctx context.Context) error { return s.ping(ctx) }

// openStore connects to the configured database and builds its repositories.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("database connected", slog.String("driver", cfg.Driver))
		return &store{
			terms:    pgterm.New(pool),
			messages: pgmessage.New(pool),
			ping:     pool.Ping,
			close:    pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		logger.Info("database opened", slog.String("driver", cfg.Driver), slog.String("path", cfg.DSN))
		return &store{
			terms:    liteterm.New(db),
			messages: litemessage.New(db),
			ping:     db.Ping,
			close: func() {
				if err := db.Close(); err != nil {
					logger.Warn("close sqlite", slog.String("error", err.Error()))
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
