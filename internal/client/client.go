// Package client is a Go consumer of the gateway API. It mirrors the
// behavior of the browser panels: fetch news with a mock fallback, track
// per-item selection, and request post generation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"postforge/internal/domain/entity"
	postUC "postforge/internal/usecase/post"
)

// Client talks to a running gateway instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the gateway at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// GenerateRequest mirrors the generate endpoint's JSON body.
type GenerateRequest struct {
	CompanyName         string           `json:"companyName"`
	CompanyDescription  string           `json:"companyDescription"`
	Industry            string           `json:"industry"`
	TargetAudience      string           `json:"targetAudience"`
	UniqueSellingPoints []string         `json:"uniqueSellingPoints"`
	Tone                string           `json:"tone"`
	Topic               string           `json:"topic,omitempty"`
	SelectedNews        []postUC.NewsRef `json:"selectedNews,omitempty"`
}

// APIError is a non-2xx gateway response.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("API returned %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("API returned %d: %s", e.Status, e.Message)
}

// GeneratePost requests one post and returns its text.
func (c *Client) GeneratePost(ctx context.Context, req GenerateRequest) (string, error) {
	var out struct {
		Post string `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/generate-post", req, &out); err != nil {
		return "", err
	}
	return out.Post, nil
}

// SearchOutcome is the result of a caller-initiated search.
type SearchOutcome struct {
	Items      []entity.NewsItem `json:"items"`
	Saved      bool              `json:"saved"`
	SavedCount int               `json:"savedCount"`
}

// SearchNews triggers a search with the given query; a blank query lets the
// server fall back to its default.
func (c *Client) SearchNews(ctx context.Context, query string) (*SearchOutcome, error) {
	body := map[string]string{}
	if query != "" {
		body["query"] = query
	}
	var out SearchOutcome
	if err := c.do(ctx, http.MethodPost, "/api/search-industry-news", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchNews returns the stored items, newest first.
func (c *Client) FetchNews(ctx context.Context) ([]entity.NewsItem, error) {
	var out struct {
		Items []entity.NewsItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/fetch-industry-news", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// FetchNewsOrMock degrades to the fixed mock dataset when the gateway is
// unreachable or errors, reporting whether live data was returned. The
// caller never sees a fetch failure.
func (c *Client) FetchNewsOrMock(ctx context.Context) (items []entity.NewsItem, live bool) {
	fetched, err := c.FetchNews(ctx)
	if err != nil {
		slog.WarnContext(ctx, "news fetch failed, using mock items", slog.Any("error", err))
		return MockNews(), false
	}
	if len(fetched) == 0 {
		return MockNews(), false
	}
	return fetched, true
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var errBody struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
			apiErr.Details = errBody.Details
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
