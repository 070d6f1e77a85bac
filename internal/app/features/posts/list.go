// internal/app/features/posts/list.go
package posts

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/paging"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// postSort maps the sortBy query key to a Mongo sort document. Unknown
// keys fall back to newest-first.
func postSort(sortBy string) bson.D {
	switch sortBy {
	case "mostCommented":
		return bson.D{{Key: "commentCount", Value: -1}}
	case "mostLiked":
		return bson.D{{Key: "likeCount", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// HandleListPosts handles GET /api/groups/{groupId}/posts.
func (h *Handler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	p := paging.Parse(r)
	q := r.URL.Query()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Groups.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Message(w, http.StatusNotFound, "존재하지 않는 그룹입니다")
			return
		}
		h.Log.Error("group lookup failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	filter := bson.M{"groupId": groupID}
	if keyword := q.Get("keyword"); keyword != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(keyword), "$options": "i"}
	}
	if isPublic := q.Get("isPublic"); isPublic != "" {
		filter["isPublic"] = isPublic == "true"
	}

	posts, err := h.Posts.List(ctx, filter, postSort(q.Get("sortBy")), p.Skip(), p.Limit())
	if err != nil {
		h.Log.Error("post list failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	total, err := h.Posts.Count(ctx, filter)
	if err != nil {
		h.Log.Error("post count failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	rows := make([]postResponse, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, toPostResponse(post))
	}
	httpjson.Write(w, http.StatusOK, paging.NewEnvelope(p, total, rows))
}
