package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/heartmarshall/dialects-backend/internal/domain"
	termsvc "github.com/heartmarshall/dialects-backend/internal/service/term"
)

func TestListTerms_Success(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	terms := &termServiceMock{
		ListTermsFunc: func(ctx context.Context) ([]domain.Term, error) {
			return []domain.Term{
				{ID: "b", Term: "وش", Meaning: "ماذا", Dialect: "نجدية", AIProvider: "openai", CreatedAt: created},
				{ID: "a", Term: "زين", Meaning: "جيد", AIProvider: "gemini", CreatedAt: created.Add(-time.Hour)},
			}, nil
		},
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodGet, "/terms", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["count"] != float64(2) {
		t.Errorf("expected count 2, got %v", body["count"])
	}
	list, ok := body["terms"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("expected 2 terms, got %v", body["terms"])
	}
	first := list[0].(map[string]any)
	if first["id"] != "b" || first["term"] != "وش" || first["dialect"] != "نجدية" {
		t.Errorf("unexpected first term %v", first)
	}
	if first["created_at"] != "2025-06-01T09:30:00Z" {
		t.Errorf("unexpected created_at %v", first["created_at"])
	}
	for _, key := range []string{"category", "understanding", "response", "ai_provider"} {
		if _, ok := first[key]; !ok {
			t.Errorf("expected key %q in term", key)
		}
	}
}

func TestListTerms_EmptyIsArray(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{
		ListTermsFunc: func(ctx context.Context) ([]domain.Term, error) { return []domain.Term{}, nil },
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodGet, "/terms", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if list, ok := body["terms"].([]any); !ok || len(list) != 0 {
		t.Errorf("expected empty array, got %v", body["terms"])
	}
	if body["count"] != float64(0) {
		t.Errorf("expected count 0, got %v", body["count"])
	}
}

func TestListTerms_Error(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{
		ListTermsFunc: func(ctx context.Context) ([]domain.Term, error) {
			return nil, errors.New("connection reset")
		},
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodGet, "/terms", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != msgListFailed {
		t.Errorf("expected error %q, got %v", msgListFailed, body["error"])
	}
	if _, ok := body["details"]; ok {
		t.Error("internal error details must not leak")
	}
}

func TestAddTerm_Success(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{
		AddTermFunc: func(ctx context.Context, input termsvc.AddTermInput) (*domain.Term, error) {
			return &domain.Term{ID: "generated"}, nil
		},
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodPost, "/terms",
		`{"term":"وش","meaning":"ماذا","dialect":"نجدية","category":"استفهام","understanding":"u","response":"r","ai_provider":"gemini"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != true || body["id"] != "generated" {
		t.Errorf("unexpected body %v", body)
	}

	calls := terms.AddTermCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	want := termsvc.AddTermInput{
		Term: "وش", Meaning: "ماذا", Dialect: "نجدية", Category: "استفهام",
		Understanding: "u", Response: "r", AIProvider: "gemini",
	}
	if calls[0].Input != want {
		t.Errorf("input = %+v, want %+v", calls[0].Input, want)
	}
}

func TestAddTerm_ClientID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantID  string
	}{
		{"string", `{"id":"term-7","term":"t","meaning":"m"}`, "term-7"},
		{"number", `{"id":1717171717171,"term":"t","meaning":"m"}`, "1717171717171"},
		{"null", `{"id":null,"term":"t","meaning":"m"}`, ""},
		{"absent", `{"term":"t","meaning":"m"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			terms := &termServiceMock{
				AddTermFunc: func(ctx context.Context, input termsvc.AddTermInput) (*domain.Term, error) {
					return &domain.Term{ID: input.ID}, nil
				},
			}
			h := newTestRouter(t, nil, terms, RouterConfig{})

			rec := doRequest(h, http.MethodPost, "/terms", tt.payload)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if got := terms.AddTermCalls()[0].Input.ID; got != tt.wantID {
				t.Errorf("ID = %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestAddTerm_TrailingData(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{
		`{"term":"t","meaning":"m"} trailing`,
		`{"term":"t","meaning":"m"}{"term":"u","meaning":"n"}`,
		`{"term":"t","meaning":"m"} [`,
	} {
		terms := &termServiceMock{}
		h := newTestRouter(t, nil, terms, RouterConfig{})

		rec := doRequest(h, http.MethodPost, "/terms", payload)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", payload, rec.Code)
			continue
		}
		if body := decodeBody(t, rec); body["error"] != msgInvalidBody {
			t.Errorf("body %q: expected error %q, got %v", payload, msgInvalidBody, body["error"])
		}
		if len(terms.AddTermCalls()) != 0 {
			t.Errorf("body %q: service must not be called", payload)
		}
	}
}

func TestAddTerm_TrailingWhitespaceAccepted(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{
		AddTermFunc: func(ctx context.Context, input termsvc.AddTermInput) (*domain.Term, error) {
			return &domain.Term{ID: "x"}, nil
		},
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodPost, "/terms", "{\"term\":\"t\",\"meaning\":\"m\"}\n\t ")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAddTerm_InvalidIDType(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodPost, "/terms", `{"id":{"x":1},"term":"t","meaning":"m"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(terms.AddTermCalls()) != 0 {
		t.Error("service must not be called")
	}
}

func TestAddTerm_ValidationMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantError string
	}{
		{"term required", domain.NewValidationError("term", "required"), msgTermRequired},
		{"meaning required", domain.NewValidationError("meaning", "required"), msgMeaningRequired},
		{"id taken", domain.NewValidationError("id", "already exists"), msgIDTaken},
		{"too long", domain.NewValidationError("term", "max 200 characters"), msgInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			terms := &termServiceMock{
				AddTermFunc: func(ctx context.Context, input termsvc.AddTermInput) (*domain.Term, error) {
					return nil, tt.err
				},
			}
			h := newTestRouter(t, nil, terms, RouterConfig{})

			rec := doRequest(h, http.MethodPost, "/terms", `{}`)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			body := decodeBody(t, rec)
			if body["error"] != tt.wantError {
				t.Errorf("expected error %q, got %v", tt.wantError, body["error"])
			}
			if body["details"] == "" || body["details"] == nil {
				t.Error("expected field details")
			}
		})
	}
}

func TestAddTerm_StoreError(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{
		AddTermFunc: func(ctx context.Context, input termsvc.AddTermInput) (*domain.Term, error) {
			return nil, errors.New("disk full")
		},
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodPost, "/terms", `{"term":"t","meaning":"m"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != msgAddFailed {
		t.Errorf("expected error %q, got %v", msgAddFailed, body["error"])
	}
}

func TestDeleteTerm_Success(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{
		DeleteTermFunc: func(ctx context.Context, input termsvc.DeleteTermInput) error { return nil },
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodDelete, "/terms/term-1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true || body["deleted_id"] != "term-1" {
		t.Errorf("unexpected body %v", body)
	}
	if got := terms.DeleteTermCalls()[0].Input.ID; got != "term-1" {
		t.Errorf("ID = %q, want term-1", got)
	}
}

func TestDeleteTerm_IDExtraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		wantID string
	}{
		{"extra segments ignored", "/terms/abc/extra/more", "abc"},
		{"numeric", "/terms/1717171717171", "1717171717171"},
		{"percent-encoded arabic", "/terms/%d9%88%d8%b4", "وش"},
		{"uppercase percent-encoding", "/terms/%D9%88%D8%B4", "وش"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			terms := &termServiceMock{
				DeleteTermFunc: func(ctx context.Context, input termsvc.DeleteTermInput) error { return nil },
			}
			h := newTestRouter(t, nil, terms, RouterConfig{})

			rec := doRequest(h, http.MethodDelete, tt.path, "")

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got := terms.DeleteTermCalls()[0].Input.ID; got != tt.wantID {
				t.Errorf("ID = %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestDeleteTerm_MissingID(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{
		DeleteTermFunc: func(ctx context.Context, input termsvc.DeleteTermInput) error {
			if input.ID == "" {
				return domain.NewValidationError("id", "required")
			}
			return nil
		},
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodDelete, "/terms/", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != msgIDMissing {
		t.Errorf("expected error %q, got %v", msgIDMissing, body["error"])
	}
}

func TestDeleteTerm_NotFound(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{
		DeleteTermFunc: func(ctx context.Context, input termsvc.DeleteTermInput) error {
			return domain.ErrNotFound
		},
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodDelete, "/terms/ghost", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("expected success false, got %v", body["success"])
	}
	if body["message"] != msgTermNotFound || body["error"] != msgTermNotFound {
		t.Errorf("unexpected body %v", body)
	}
}

func TestDeleteTerm_StoreError(t *testing.T) {
	t.Parallel()

	terms := &termServiceMock{
		DeleteTermFunc: func(ctx context.Context, input termsvc.DeleteTermInput) error {
			return errors.New("connection reset")
		},
	}
	h := newTestRouter(t, nil, terms, RouterConfig{})

	rec := doRequest(h, http.MethodDelete, "/terms/x", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != msgDeleteFailed {
		t.Errorf("expected error %q, got %v", msgDeleteFailed, body["error"])
	}
}
