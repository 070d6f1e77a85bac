// internal/app/features/posts/delete.go
package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/secrets"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/txn"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDeletePost handles DELETE /api/posts/{postId}. The post delete
// and the owning group's postCount decrement run inside one
// transaction, mirroring create.
func (h *Handler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	var req deletePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
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

	if _, err := h.Groups.GetByID(ctx, p.GroupID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "상위 그룹이 존재하지 않습니다")
			return
		}
		h.Log.Error("group lookup failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	if !secrets.Verify(p.PostPassword, req.PostPassword) {
		httpjson.Forbidden(w)
		return
	}

	err = txn.WithTransaction(ctx, h.Client, func(ctx context.Context) error {
		deleted, err := h.Posts.Delete(ctx, id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return mongo.ErrNoDocuments
		}
		return h.Groups.IncPostCount(ctx, p.GroupID, -1)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("post delete failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Message(w, http.StatusOK, "게시글 삭제 성공")
}
