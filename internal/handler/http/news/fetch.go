package news

import (
	"errors"
	"log/slog"
	"net/http"

	"postforge/internal/domain/entity"
	"postforge/internal/handler/http/requestid"
	"postforge/internal/handler/http/respond"
	newsUC "postforge/internal/usecase/news"
)

// FetchHandler serves /api/fetch-industry-news. Both GET and POST are
// accepted; the request carries no parameters.
type FetchHandler struct{ Svc *newsUC.Service }

func (h FetchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		respond.MethodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	items, err := h.Svc.Latest(r.Context())
	if err != nil {
		if errors.Is(err, newsUC.ErrStoreNotConfigured) {
			respond.Error(w, http.StatusInternalServerError,
				"News store not configured. Cannot fetch news items.")
			return
		}
		slog.ErrorContext(r.Context(), "news fetch failed",
			slog.String("request_id", requestid.FromContext(r.Context())),
			slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch industry news")
		return
	}

	if items == nil {
		items = []entity.NewsItem{}
	}
	respond.JSON(w, http.StatusOK, fetchResponse{Items: items})
}
