// Package message implements the chat message log using PostgreSQL.
package message

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/dialects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dialects-backend/internal/domain"
)

// Repo appends chat exchanges to the messages table.
type Repo struct {
	q postgres.Querier
}

// New creates a new message repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create appends one exchange. The row id is assigned by the database.
func (r *Repo) Create(ctx context.Context, m *domain.Message) error {
	query, args, err := postgres.Builder.
		Insert("messages").
		Columns("user_msg", "ai_reply", "ai_provider", "created_at").
		Values(m.UserMsg, m.AIReply, m.AIProvider, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert message: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "message", m.AIProvider)
	}

	return nil
}

// DeleteOlderThan removes exchanges logged before threshold and returns how
// many rows were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := postgres.Builder.
		Delete("messages").
		Where(squirrel.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete messages: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "message", "")
	}

	return tag.RowsAffected(), nil
}
