package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"postforge/internal/domain/entity"
)

func TestGeneratePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate-post" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"post":"Go electric! ⚡ #Fleet"}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).GeneratePost(context.Background(), GenerateRequest{
		CompanyName:    "Fleete",
		Industry:       "Fleet electrification",
		TargetAudience: "Fleet operators",
	})
	if err != nil {
		t.Fatalf("GeneratePost err=%v", err)
	}
	if got != "Go electric! ⚡ #Fleet" {
		t.Fatalf("post = %q", got)
	}
}

func TestGeneratePost_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"API returned 429","details":"rate limited"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GeneratePost(context.Background(), GenerateRequest{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusTooManyRequests || apiErr.Message != "API returned 429" {
		t.Fatalf("apiErr = %+v", apiErr)
	}
	if apiErr.Details != "rate limited" {
		t.Fatalf("details = %q", apiErr.Details)
	}
}

func TestFetchNewsOrMock_FallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"News store not configured. Cannot fetch news items."}`))
	}))
	defer srv.Close()

	items, live := New(srv.URL).FetchNewsOrMock(context.Background())

	if live {
		t.Fatal("live = true, want mock fallback")
	}
	if len(items) != len(MockNews()) {
		t.Fatalf("got %d items", len(items))
	}
}

func TestFetchNewsOrMock_FallsBackOnEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	items, live := New(srv.URL).FetchNewsOrMock(context.Background())

	if live {
		t.Fatal("live = true, want mock fallback")
	}
	if len(items) == 0 {
		t.Fatal("no items")
	}
}

func TestFetchNewsOrMock_Live(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"n1","title":"Live item","summary":"s"}]}`))
	}))
	defer srv.Close()

	items, live := New(srv.URL).FetchNewsOrMock(context.Background())

	if !live {
		t.Fatal("live = false, want live data")
	}
	if len(items) != 1 || items[0].ID != "n1" {
		t.Fatalf("items = %+v", items)
	}
}

func TestSelection(t *testing.T) {
	items := []entity.NewsItem{
		{ID: "a", Title: "A", Summary: "sa"},
		{ID: "b", Title: "B", Summary: "sb"},
	}
	sel := NewSelection(items)

	if on := sel.Toggle("a"); !on {
		t.Fatal("toggle on failed")
	}
	if sel.Toggle("missing") {
		t.Fatal("unknown ID toggled")
	}

	refs := sel.Refs()
	if len(refs) != 1 || refs[0].Title != "A" {
		t.Fatalf("refs = %+v", refs)
	}

	// Refresh keeps selection for surviving items only.
	sel.SetItems([]entity.NewsItem{{ID: "a"}, {ID: "c"}})
	if !sel.Selected("a") {
		t.Fatal("selection lost on refresh")
	}

	sel.SetItems([]entity.NewsItem{{ID: "c"}})
	if sel.Selected("a") {
		t.Fatal("stale selection survived removal")
	}

	if off := sel.Toggle("c"); !off {
		t.Fatal("toggle on new item failed")
	}
	if on := sel.Toggle("c"); on {
		t.Fatal("second toggle should deselect")
	}
}
