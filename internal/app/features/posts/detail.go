// internal/app/features/posts/detail.go
package posts

import (
	"context"
	"errors"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandlePostDetail handles GET /api/posts/{postId}.
func (h *Handler) HandlePostDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "추억을 찾을 수 없습니다")
			return
		}
		h.Log.Error("post lookup failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, toPostResponse(p))
}

// HandleIsPublic handles GET /api/posts/{postId}/is-public.
func (h *Handler) HandleIsPublic(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("post lookup failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, isPublicResponse{ID: p.ID.Hex(), IsPublic: p.IsPublic})
}
