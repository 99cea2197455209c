// Package term implements the dialect term repository using PostgreSQL.
package term

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/dialects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dialects-backend/internal/domain"
)

const (
	table  = "dialect_terms"
	entity = "dialect_term"
)

var columns = []string{
	"id", "term", "meaning", "dialect", "category",
	"understanding", "response", "ai_provider", "created_at",
}

// Repo provides dialect term persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new term repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a term. Returns domain.ErrAlreadyExists when the id is taken.
func (r *Repo) Create(ctx context.Context, t *domain.Term) error {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.Term, t.Meaning, t.Dialect, t.Category,
			t.Understanding, t.Response, t.AIProvider, t.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", entity, err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, t.ID)
	}

	return nil
}

// List returns all terms, newest first. Returns an empty slice on an empty table.
func (r *Repo) List(ctx context.Context) ([]domain.Term, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "seq DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", table, err)
	}

	terms := []domain.Term{}
	if err := pgxscan.Select(ctx, r.q, &terms, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}

	return terms, nil
}

// Delete removes the term with exactly this id.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", entity, err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}
