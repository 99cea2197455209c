package term

import (
	"strings"

	"github.com/heartmarshall/dialects-backend/internal/domain"
)

// AddTermInput holds the parameters for adding a term.
type AddTermInput struct {
	ID            string `json:"id"            validate:"max=128"`
	Term          string `json:"term"          validate:"required,max=200"`
	Meaning       string `json:"meaning"       validate:"required,max=2000"`
	Dialect       string `json:"dialect"       validate:"max=2000"`
	Category      string `json:"category"      validate:"max=2000"`
	Understanding string `json:"understanding" validate:"max=2000"`
	Response      string `json:"response"      validate:"max=2000"`
	AIProvider    string `json:"ai_provider"   validate:"max=64"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (i AddTermInput) Normalize() AddTermInput {
	return AddTermInput{
		ID:            strings.TrimSpace(i.ID),
		Term:          strings.TrimSpace(i.Term),
		Meaning:       strings.TrimSpace(i.Meaning),
		Dialect:       strings.TrimSpace(i.Dialect),
		Category:      strings.TrimSpace(i.Category),
		Understanding: strings.TrimSpace(i.Understanding),
		Response:      strings.TrimSpace(i.Response),
		AIProvider:    strings.TrimSpace(i.AIProvider),
	}
}

// Validate checks all fields and collects all errors.
func (i AddTermInput) Validate() error {
	return domain.ValidateStruct(i.Normalize())
}

// DeleteTermInput holds the parameters for deleting a term.
type DeleteTermInput struct {
	ID string `json:"id" validate:"required,max=128"`
}

// Validate checks all fields and collects all errors.
func (i DeleteTermInput) Validate() error {
	return domain.ValidateStruct(i)
}
