package domain

import "time"

// Message is an append-only log row of one chat exchange.
type Message struct {
	UserMsg    string
	AIReply    string
	AIProvider string
	CreatedAt  time.Time
}
