// internal/app/features/groups/like.go
package groups

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

// HandleLikeGroup handles POST /api/groups/{groupId}/like. The counter
// is bumped with a single atomic increment, so exactly one request sees
// the badge threshold value and awards the badge.
func (h *Handler) HandleLikeGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := groupIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.IncLikeCount(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("group like failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	// Badge awards are best effort: the like itself already succeeded.
	for _, award := range engagement.GroupLiked(g) {
		if err := h.Groups.AwardBadge(ctx, award.GroupID, award.Badge); err != nil {
			h.Log.Error("badge award failed",
				zap.String("group_id", award.GroupID.Hex()),
				zap.String("badge", award.Badge),
				zap.Error(err))
		}
	}

	httpjson.Message(w, http.StatusOK, "그룹 공감하기 성공")
}
