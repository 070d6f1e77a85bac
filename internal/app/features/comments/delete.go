// internal/app/features/comments/delete.go
package comments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/secrets"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDeleteComment handles DELETE /api/comments/{commentId}.
func (h *Handler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := commentIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w)
		return
	}
	if req.Password == "" {
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

	deleted, err := h.Comments.Delete(ctx, id)
	if err != nil {
		h.Log.Error("comment delete failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w)
		return
	}

	if err := h.Posts.IncCommentCount(ctx, cm.PostID, -1); err != nil {
		h.Log.Error("commentCount decrement failed",
			zap.String("post_id", cm.PostID.Hex()), zap.Error(err))
	}

	httpjson.Message(w, http.StatusOK, "답글 삭제 성공")
}
