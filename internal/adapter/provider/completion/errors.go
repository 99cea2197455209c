package completion

import (
	"fmt"

	"github.com/heartmarshall/dialects-backend/internal/domain"
)

// UnknownProviderError is returned for a provider name with no binding.
// No outbound call is made.
type UnknownProviderError struct {
	Provider string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q", e.Provider)
}

func (e *UnknownProviderError) Unwrap() error { return domain.ErrValidation }

// Detail returns a message safe to show to API clients.
func (e *UnknownProviderError) Detail() string {
	return "مزود غير مدعوم: " + e.Provider
}

// MissingCredentialError is returned when the provider's key was never configured.
type MissingCredentialError struct {
	Provider string
	display  string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: api key is not configured", e.Provider)
}

func (e *MissingCredentialError) Unwrap() error { return domain.ErrConfiguration }

func (e *MissingCredentialError) Detail() string {
	return "مفتاح " + e.display + " غير متوفر"
}

// TransportError is returned when the request never produced an HTTP response
// (DNS, connect, timeout, cancellation).
type TransportError struct {
	Provider string
	Err      error
	display  string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{domain.ErrUpstream, e.Err} }

func (e *TransportError) Detail() string {
	return "فشل الاتصال بـ " + e.display
}

// ProviderError is returned when the provider answered with a non-success
// status. Message is the provider's own error text when it sent one.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Message)
}

func (e *ProviderError) Unwrap() error { return domain.ErrUpstream }

func (e *ProviderError) Detail() string { return e.Message }
