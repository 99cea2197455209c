// Package message implements the chat message log on SQLite.
package message

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/dialects-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/dialects-backend/internal/domain"
)

// Repo appends chat exchanges to the messages table.
type Repo struct {
	q sqlite.Querier
}

// New creates a new message repository.
func New(q sqlite.Querier) *Repo {
	return &Repo{q: q}
}

// Create appends one exchange.
func (r *Repo) Create(ctx context.Context, m *domain.Message) error {
	query, args, err := sqlite.Builder.
		Insert("messages").
		Columns("user_msg", "ai_reply", "ai_provider", "created_at").
		Values(m.UserMsg, m.AIReply, m.AIProvider, m.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert message: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, "message", m.AIProvider)
	}

	return nil
}

// DeleteOlderThan removes exchanges logged before threshold.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := sqlite.Builder.
		Delete("messages").
		Where(squirrel.Lt{"created_at": threshold.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete messages: %w", err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "message", "")
	}

	return res.RowsAffected()
}
