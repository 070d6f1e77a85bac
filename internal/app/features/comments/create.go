// internal/app/features/comments/create.go
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
	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCreateComment handles POST /api/posts/{postId}/comments.
func (h *Handler) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	var req createCommentRequest
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

	if _, err := h.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "존재하지 않는 게시물입니다")
			return
		}
		h.Log.Error("post lookup failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	hash, err := secrets.Hash(req.Password)
	if err != nil {
		h.Log.Error("comment password hash failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	cm, err := h.Comments.Create(ctx, models.Comment{
		PostID:   postID,
		Nickname: sanitize.Plain(req.Nickname),
		Content:  sanitize.Plain(req.Content),
		Password: hash,
	})
	if err != nil {
		h.Log.Error("comment create failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	if err := h.Posts.IncCommentCount(ctx, postID, 1); err != nil {
		h.Log.Error("commentCount increment failed",
			zap.String("post_id", postID.Hex()), zap.Error(err))
	}

	httpjson.Write(w, http.StatusOK, toCommentResponse(cm))
}
