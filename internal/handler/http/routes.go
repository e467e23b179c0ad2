package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	newsHandler "postforge/internal/handler/http/news"
	postHandler "postforge/internal/handler/http/post"
	"postforge/internal/handler/http/requestid"
	newsUC "postforge/internal/usecase/news"
	postUC "postforge/internal/usecase/post"
)

// maxBodyBytes caps incoming request bodies. The largest legitimate body is
// a company profile with selected news, far below this.
const maxBodyBytes = 1 << 20

// Deps carries everything the route table needs.
type Deps struct {
	PostSvc    *postUC.Service
	NewsSvc    *newsUC.Service
	DB         *sql.DB
	CronSecret string
	Version    string
	Logger     *slog.Logger

	// RateLimit guards the gateway endpoints; nil disables limiting.
	RateLimit *RateLimiter
}

// NewMux builds the full HTTP handler: gateway routes, health and metrics
// endpoints, wrapped in the shared middleware chain. Method gating happens
// inside each handler so unsupported methods get the endpoint's own 405
// body instead of the mux default.
func NewMux(d Deps) http.Handler {
	mux := http.NewServeMux()

	gateway := func(h http.Handler) http.Handler {
		if d.RateLimit != nil {
			return d.RateLimit.Limit(h)
		}
		return h
	}

	mux.Handle("/api/generate-post", gateway(postHandler.GenerateHandler{Svc: d.PostSvc}))
	mux.Handle("/api/search-industry-news", gateway(newsHandler.SearchHandler{
		Svc:        d.NewsSvc,
		CronSecret: d.CronSecret,
	}))
	mux.Handle("/api/fetch-industry-news", gateway(newsHandler.FetchHandler{Svc: d.NewsSvc}))

	mux.Handle("/healthz", &HealthHandler{DB: d.DB, Version: d.Version})
	mux.Handle("/metrics", promhttp.Handler())

	return Chain(mux,
		requestid.Middleware,
		Recover(d.Logger),
		Logging(d.Logger),
		Metrics,
		LimitRequestBody(maxBodyBytes),
	)
}
