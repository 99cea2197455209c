// Package term implements the dialect term repository on SQLite.
package term

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/dialects-backend/internal/adapter/sqlite"
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

// Repo provides dialect term persistence backed by SQLite.
type Repo struct {
	q sqlite.Querier
}

// New creates a new term repository.
func New(q sqlite.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a term. Returns domain.ErrAlreadyExists when the id is taken.
func (r *Repo) Create(ctx context.Context, t *domain.Term) error {
	query, args, err := sqlite.Builder.
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.Term, t.Meaning, t.Dialect, t.Category,
			t.Understanding, t.Response, t.AIProvider, t.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", entity, err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, entity, t.ID)
	}

	return nil
}

// List returns all terms, newest first. Rows with equal timestamps come back
// in reverse insertion order.
func (r *Repo) List(ctx context.Context) ([]domain.Term, error) {
	query, args, err := sqlite.Builder.
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "rowid DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", table, err)
	}

	terms := []domain.Term{}
	if err := sqlscan.Select(ctx, r.q, &terms, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}

	return terms, nil
}

// Delete removes the term with exactly this id.
// Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := sqlite.Builder.
		Delete(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", entity, err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, entity, id)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: rows affected: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}
