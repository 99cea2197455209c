package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/heartmarshall/dialects-backend/internal/domain"
	termsvc "github.com/heartmarshall/dialects-backend/internal/service/term"
)

type termService interface {
	ListTerms(ctx context.Context) ([]domain.Term, error)
	AddTerm(ctx context.Context, input termsvc.AddTermInput) (*domain.Term, error)
	DeleteTerm(ctx context.Context, input termsvc.DeleteTermInput) error
}

// TermHandler serves the dialect term endpoints.
type TermHandler struct {
	svc termService
	log *slog.Logger
}

// NewTermHandler creates a TermHandler.
func NewTermHandler(svc termService, logger *slog.Logger) *TermHandler {
	return &TermHandler{svc: svc, log: logger.With("handler", "term")}
}

// opaqueID accepts a JSON string or number and keeps its text unchanged.
type opaqueID string

func (id *opaqueID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = opaqueID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return errors.New("id must be a string or a number")
		}
		*id = opaqueID(n.String())
	}
	return nil
}

type addTermRequest struct {
	ID            opaqueID `json:"id"`
	Term          string   `json:"term"`
	Meaning       string   `json:"meaning"`
	Dialect       string   `json:"dialect"`
	Category      string   `json:"category"`
	Understanding string   `json:"understanding"`
	Response      string   `json:"response"`
	AIProvider    string   `json:"ai_provider"`
}

type termResponse struct {
	ID            string    `json:"id"`
	Term          string    `json:"term"`
	Meaning       string    `json:"meaning"`
	Dialect       string    `json:"dialect"`
	Category      string    `json:"category"`
	Understanding string    `json:"understanding"`
	Response      string    `json:"response"`
	AIProvider    string    `json:"ai_provider"`
	CreatedAt     time.Time `json:"created_at"`
}

type listTermsResponse struct {
	Terms []termResponse `json:"terms"`
	Count int            `json:"count"`
}

type addTermResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type deleteTermResponse struct {
	Success   bool   `json:"success"`
	DeletedID string `json:"deleted_id"`
}

type termNotFoundResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// List handles GET /terms.
func (h *TermHandler) List(w http.ResponseWriter, r *http.Request) {
	terms, err := h.svc.ListTerms(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, msgListFailed)
		return
	}

	writeJSON(w, http.StatusOK, listTermsResponse{
		Terms: lo.Map(terms, func(t domain.Term, _ int) termResponse { return toTermResponse(t) }),
		Count: len(terms),
	})
}

// Add handles POST /terms.
func (h *TermHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addTermRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.AddTerm(r.Context(), termsvc.AddTermInput{
		ID:            string(req.ID),
		Term:          req.Term,
		Meaning:       req.Meaning,
		Dialect:       req.Dialect,
		Category:      req.Category,
		Understanding: req.Understanding,
		Response:      req.Response,
		AIProvider:    req.AIProvider,
	})
	if err != nil {
		handleError(w, r, h.log, err, msgAddFailed)
		return
	}

	writeJSON(w, http.StatusOK, addTermResponse{Success: true, ID: t.ID})
}

// Delete handles DELETE /terms/{id}. Only the first segment after /terms/
// is the id; anything after it is ignored.
func (h *TermHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(termID(r))

	err := h.svc.DeleteTerm(r.Context(), termsvc.DeleteTermInput{ID: id})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, deleteTermResponse{Success: true, DeletedID: id})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, termNotFoundResponse{
			Success: false,
			Message: msgTermNotFound,
			Error:   msgTermNotFound,
		})
	default:
		handleError(w, r, h.log, err, msgDeleteFailed)
	}
}

// termID returns the decoded {id} segment. chi matches on the escaped path
// when the request carries one, so the segment is unescaped here.
func termID(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if decoded, err := url.PathUnescape(id); err == nil {
		return decoded
	}
	return id
}

func toTermResponse(t domain.Term) termResponse {
	return termResponse{
		ID:            t.ID,
		Term:          t.Term,
		Meaning:       t.Meaning,
		Dialect:       t.Dialect,
		Category:      t.Category,
		Understanding: t.Understanding,
		Response:      t.Response,
		AIProvider:    t.AIProvider,
		CreatedAt:     t.CreatedAt,
	}
}
