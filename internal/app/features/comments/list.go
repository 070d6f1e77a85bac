// internal/app/features/comments/list.go
package comments

import (
	"context"
	"errors"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/paging"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleListComments handles GET /api/posts/{postId}/comments. Rows are
// ordered by _id ascending (oldest first) and carry the post title.
func (h *Handler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	p, ok := paging.ParseStrict(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	post, err := h.Posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("post lookup failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	cms, err := h.Comments.ListByPost(ctx, postID, p.Skip(), p.Limit())
	if err != nil {
		h.Log.Error("comment list failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	total, err := h.Comments.CountByPost(ctx, postID)
	if err != nil {
		h.Log.Error("comment count failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	rows := make([]commentListItem, 0, len(cms))
	for _, cm := range cms {
		rows = append(rows, toCommentListItem(cm, post.Title))
	}
	httpjson.Write(w, http.StatusOK, paging.NewEnvelope(p, total, rows))
}
