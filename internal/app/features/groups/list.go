// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"
	"regexp"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/paging"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// groupSort maps the sortBy query key to a Mongo sort document.
// Unknown keys (including the legacy "lastest" spelling) fall back to
// newest-first.
func groupSort(sortBy string) bson.D {
	switch sortBy {
	case "mostPosted":
		return bson.D{{Key: "postCount", Value: -1}}
	case "mostLiked":
		return bson.D{{Key: "likeCount", Value: -1}}
	case "mostBadge":
		return bson.D{{Key: "badgeCount", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// HandleListGroups handles GET /api/groups.
func (h *Handler) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)
	q := r.URL.Query()

	filter := bson.M{}
	if keyword := q.Get("keyword"); keyword != "" {
		// case-insensitive substring match on the name
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(keyword), "$options": "i"}
	}
	if isPublic := q.Get("isPublic"); isPublic != "" {
		filter["isPublic"] = isPublic == "true"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Groups.List(ctx, filter, groupSort(q.Get("sortBy")), p.Skip(), p.Limit())
	if err != nil {
		h.Log.Error("group list failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	total, err := h.Groups.Count(ctx, filter)
	if err != nil {
		h.Log.Error("group count failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	rows := make([]groupListItem, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, toGroupListItem(g))
	}
	httpjson.Write(w, http.StatusOK, paging.NewEnvelope(p, total, rows))
}
