package chat

import (
	"strings"

	"github.com/heartmarshall/dialects-backend/internal/domain"
)

// ChatInput holds the parameters of one chat exchange.
type ChatInput struct {
	Message  string `json:"message"  validate:"required,max=4000"`
	Provider string `json:"provider" validate:"max=64"`
}

// Validate checks all fields and collects all errors.
func (i ChatInput) Validate() error {
	return domain.ValidateStruct(ChatInput{
		Message:  strings.TrimSpace(i.Message),
		Provider: strings.TrimSpace(i.Provider),
	})
}

// ChatResult is the outcome of a successful exchange.
type ChatResult struct {
	Reply    string
	Provider string
}
