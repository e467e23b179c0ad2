package post

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"postforge/internal/domain/entity"
	"postforge/internal/handler/http/requestid"
	"postforge/internal/handler/http/respond"
	"postforge/internal/pkg/llmapi"
	postUC "postforge/internal/usecase/post"
)

// GenerateHandler serves POST /api/generate-post.
type GenerateHandler struct{ Svc *postUC.Service }

func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.MethodNotAllowed(w, http.MethodPost)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	text, err := h.Svc.Generate(r.Context(), req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, generateResponse{Post: text})
}

// writeError maps use-case failures onto the endpoint's error taxonomy:
// validation 400, missing credential 500, upstream failure passes the
// upstream status through.
func (h GenerateHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		respond.Error(w, http.StatusBadRequest, "Missing required company information")
		return
	}

	if errors.Is(err, postUC.ErrGeneratorNotConfigured) {
		respond.Error(w, http.StatusInternalServerError, "API key not configured")
		return
	}

	var upstream *llmapi.UpstreamError
	if errors.As(err, &upstream) {
		respond.ErrorDetails(w, upstream.Status, upstream.Error(),
			map[string]string{"details": upstream.Details})
		return
	}

	slog.ErrorContext(r.Context(), "post generation failed",
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.Any("error", err))
	respond.Error(w, http.StatusInternalServerError, "Failed to generate post")
}
