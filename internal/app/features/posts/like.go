// internal/app/features/posts/like.go
package posts

import (
	"context"
	"errors"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/policy/engagement"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleLikePost handles POST /api/posts/{postId}/like. A post crossing
// the like threshold awards a badge to its owning group; a missing
// owner skips the award without failing the like.
func (h *Handler) HandleLikePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Posts.IncLikeCount(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("post like failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	for _, award := range engagement.PostLiked(p) {
		err := h.Groups.AwardBadge(ctx, award.GroupID, award.Badge)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			h.Log.Error("badge award failed",
				zap.String("group_id", award.GroupID.Hex()),
				zap.String("badge", award.Badge),
				zap.Error(err))
		}
	}

	httpjson.Message(w, http.StatusOK, "게시글 공감하기 성공")
}
