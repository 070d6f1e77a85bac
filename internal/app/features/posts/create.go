// internal/app/features/posts/create.go
package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/sanitize"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/secrets"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/txn"
	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCreatePost handles POST /api/groups/{groupId}/posts. The post
// insert and the owning group's postCount increment run inside one
// transaction so the counter never drifts from the live post set.
func (h *Handler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w)
		return
	}
	if req.Nickname == "" || req.Title == "" || req.Content == "" ||
		req.PostPassword == "" || req.IsPublic == nil {
		httpjson.BadRequest(w)
		return
	}

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

	hash, err := secrets.Hash(req.PostPassword)
	if err != nil {
		h.Log.Error("post password hash failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	var created models.Post
	err = txn.WithTransaction(ctx, h.Client, func(ctx context.Context) error {
		var err error
		created, err = h.Posts.Create(ctx, models.Post{
			GroupID:      groupID,
			Nickname:     sanitize.Plain(req.Nickname),
			Title:        sanitize.Plain(req.Title),
			Content:      sanitize.Plain(req.Content),
			PostPassword: hash,
			ImageURL:     req.ImageURL,
			Tags:         sanitize.PlainAll(tags),
			Location:     sanitize.Plain(req.Location),
			Moment:       req.Moment,
			IsPublic:     *req.IsPublic,
		})
		if err != nil {
			return err
		}
		return h.Groups.IncPostCount(ctx, groupID, 1)
	})
	if err != nil {
		h.Log.Error("post create failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, toPostResponse(created))
}
