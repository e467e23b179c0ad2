package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"postforge/internal/pkg/llmapi"
	postUC "postforge/internal/usecase/post"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

const validBody = `{
	"companyName": "Acme Logistics",
	"companyDescription": "Fleet operator",
	"industry": "Logistics",
	"targetAudience": "Fleet managers",
	"uniqueSellingPoints": ["Fast", "Reliable"],
	"tone": "professional"
}`

func doGenerate(t *testing.T, h GenerateHandler, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/api/generate-post", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return body
}

func TestGenerate_Success(t *testing.T) {
	gen := &stubGenerator{text: "Acme keeps fleets moving! 🚚 #Logistics"}
	h := GenerateHandler{Svc: &postUC.Service{Gen: gen}}

	rec := doGenerate(t, h, http.MethodPost, validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["post"]; got != gen.text {
		t.Fatalf("post = %q", got)
	}
}

func TestGenerate_MethodNotAllowed(t *testing.T) {
	h := GenerateHandler{Svc: &postUC.Service{Gen: &stubGenerator{}}}

	rec := doGenerate(t, h, http.MethodGet, "")

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("code = %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Method not allowed" {
		t.Fatalf("error = %q", got)
	}
}

func TestGenerate_InvalidBody(t *testing.T) {
	h := GenerateHandler{Svc: &postUC.Service{Gen: &stubGenerator{}}}

	rec := doGenerate(t, h, http.MethodPost, "{not json")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestGenerate_MissingCompanyFields(t *testing.T) {
	gen := &stubGenerator{text: "unused"}
	h := GenerateHandler{Svc: &postUC.Service{Gen: gen}}

	rec := doGenerate(t, h, http.MethodPost, `{"industry":"Logistics","targetAudience":"Fleet managers"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Missing required company information" {
		t.Fatalf("error = %q", got)
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times before validation", gen.calls)
	}
}

func TestGenerate_NotConfigured(t *testing.T) {
	h := GenerateHandler{Svc: &postUC.Service{}}

	rec := doGenerate(t, h, http.MethodPost, validBody)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "API key not configured" {
		t.Fatalf("error = %q", got)
	}
}

func TestGenerate_UpstreamStatusPassthrough(t *testing.T) {
	gen := &stubGenerator{err: &llmapi.UpstreamError{
		Status:  http.StatusTooManyRequests,
		Details: "rate limit exceeded",
	}}
	h := GenerateHandler{Svc: &postUC.Service{Gen: gen}}

	rec := doGenerate(t, h, http.MethodPost, validBody)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("code = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "API returned 429" {
		t.Fatalf("error = %q", body["error"])
	}
	if body["details"] != "rate limit exceeded" {
		t.Fatalf("details = %q", body["details"])
	}
}
