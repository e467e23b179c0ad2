package news

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"postforge/internal/handler/http/requestid"
	"postforge/internal/handler/http/respond"
	"postforge/internal/pkg/llmapi"
	newsUC "postforge/internal/usecase/news"
)

// SearchHandler serves /api/search-industry-news. POST carries an optional
// caller query; GET is the scheduler entry point and must present the shared
// cron secret as a bearer token.
type SearchHandler struct {
	Svc *newsUC.Service
	// CronSecret gates GET invocations. Empty means scheduled runs are not
	// configured and every GET fails with a configuration error.
	CronSecret string
}

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var query string

	switch r.Method {
	case http.MethodPost:
		// The body is optional; a missing or blank query falls back to the
		// default inside the use case.
		var req searchRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}
		query = req.Query
	case http.MethodGet:
		if !h.authorizeCron(w, r) {
			return
		}
	default:
		respond.MethodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	res, err := h.Svc.Search(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, searchResponse{
		Items:      res.Items,
		Saved:      res.Saved,
		SavedCount: res.SavedCount,
	})
}

// authorizeCron verifies the scheduler's bearer token. It writes the error
// response itself and reports whether the request may proceed.
func (h SearchHandler) authorizeCron(w http.ResponseWriter, r *http.Request) bool {
	if h.CronSecret == "" {
		respond.Error(w, http.StatusInternalServerError,
			"Cron secret not configured. Please add CRON_SECRET to your environment variables.")
		return false
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.CronSecret)) != 1 {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	return true
}

func (h SearchHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, newsUC.ErrSearchNotConfigured):
		respond.Error(w, http.StatusInternalServerError,
			"Perplexity API key not configured. Please add PERPLEXITY_API_KEY to your environment variables.")
		return
	case errors.Is(err, newsUC.ErrStoreNotConfigured):
		respond.Error(w, http.StatusInternalServerError,
			"News store not configured. Cannot save news items.")
		return
	}

	var malformed *newsUC.MalformedPayloadError
	if errors.As(err, &malformed) {
		// The raw completion text travels with the error so the payload can
		// be inspected without replaying the search.
		respond.ErrorDetails(w, http.StatusInternalServerError,
			"Failed to parse news data from search response",
			map[string]string{"content": malformed.Raw})
		return
	}

	var upstream *llmapi.UpstreamError
	if errors.As(err, &upstream) {
		respond.ErrorDetails(w, upstream.Status, upstream.Error(),
			map[string]string{"details": upstream.Details})
		return
	}

	slog.ErrorContext(r.Context(), "news search failed",
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.Any("error", err))
	respond.Error(w, http.StatusInternalServerError, "Failed to search for industry news")
}
