package domain

import "time"

// Term is a single dialect vocabulary entry. Terms are immutable once stored;
// the only way to change one is to delete it and add it again.
//
// ID is an opaque string everywhere, even when a client sends something
// that looks numeric.
type Term struct {
	ID            string    `db:"id"`
	Term          string    `db:"term"`
	Meaning       string    `db:"meaning"`
	Dialect       string    `db:"dialect"`
	Category      string    `db:"category"`
	Understanding string    `db:"understanding"`
	Response      string    `db:"response"`
	AIProvider    string    `db:"ai_provider"`
	CreatedAt     time.Time `db:"created_at"`
}
