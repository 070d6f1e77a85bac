// internal/app/features/comments/update.go
package comments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/sanitize"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/secrets"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdateComment handles PUT /api/comments/{commentId}. Unlike the
// PATCH endpoints this replaces nickname and content wholesale.
func (h *Handler) HandleUpdateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := commentIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	var req updateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w)
		return
	}
	if req.Nickname == "" || req.Content == "" || req.Password == "" {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cm, err := h.Comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("comment lookup failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	if !secrets.Verify(cm.Password, req.Password) {
		httpjson.Forbidden(w)
		return
	}

	updated, err := h.Comments.UpdateContent(ctx, id,
		sanitize.Plain(req.Nickname), sanitize.Plain(req.Content))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("comment update failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, toCommentResponse(updated))
}
