package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/dialects-backend/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// detailer is implemented by errors that carry a client-safe explanation.
type detailer interface {
	Detail() string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// InternalError writes the generic 500 envelope. It is the panic fallback.
func InternalError(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusInternalServerError, msgInternal, "")
}

// errTrailingData reports a body with content after its JSON value.
var errTrailingData = errors.New("unexpected data after JSON value")

// decodeJSON reads the request body into dst. An empty body leaves dst zeroed;
// anything after the first JSON value is rejected. It writes the 400 response
// itself and reports false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	switch {
	case errors.Is(err, io.EOF):
		return true
	case err == nil:
		if extra := dec.Decode(&json.RawMessage{}); !errors.Is(extra, io.EOF) {
			err = extra
			if err == nil {
				err = errTrailingData
			}
		}
	}
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeError(w, http.StatusBadRequest, msgBodyTooLarge, "")
		return false
	}

	writeError(w, http.StatusBadRequest, msgInvalidBody, err.Error())
	return false
}

// handleError maps a service error onto the envelope. failMsg is the
// operation's message for 5xx outcomes.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, failMsg string) {
	var (
		ve *domain.ValidationError
		d  detailer
	)
	hasDetail := errors.As(err, &d)

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, validationMessage(ve), validationDetails(ve))
	case errors.Is(err, domain.ErrValidation):
		details := ""
		if hasDetail {
			details = d.Detail()
		}
		writeError(w, http.StatusBadRequest, msgInvalidInput, details)
	case errors.Is(err, domain.ErrConfiguration), errors.Is(err, domain.ErrUpstream):
		log.ErrorContext(r.Context(), "upstream failure", slog.String("error", err.Error()))
		details := ""
		if hasDetail {
			details = d.Detail()
		}
		writeError(w, http.StatusInternalServerError, failMsg, details)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, failMsg, "")
	}
}

func validationMessage(ve *domain.ValidationError) string {
	fe := ve.Field()
	switch {
	case fe.Message == "required":
		if msg, ok := requiredMessages[fe.Field]; ok {
			return msg
		}
	case fe.Field == "id" && fe.Message == "already exists":
		return msgIDTaken
	}
	return msgInvalidInput
}

func validationDetails(ve *domain.ValidationError) string {
	return strings.Join(lo.Map(ve.Errors, func(fe domain.FieldError, _ int) string {
		return fe.Field + ": " + fe.Message
	}), "; ")
}
