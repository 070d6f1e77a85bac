// internal/app/features/posts/update.go
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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdatePost handles PATCH /api/posts/{postId}. The post password
// authorizes the change; only fields present in the body are written.
func (h *Handler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	var req updatePostRequest
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

	if !secrets.Verify(p.PostPassword, req.PostPassword) {
		httpjson.Forbidden(w)
		return
	}

	set := bson.M{}
	if req.Nickname != nil {
		set["nickname"] = sanitize.Plain(*req.Nickname)
	}
	if req.Title != nil {
		set["title"] = sanitize.Plain(*req.Title)
	}
	if req.Content != nil {
		set["content"] = sanitize.Plain(*req.Content)
	}
	if req.ImageURL != nil {
		set["imageUrl"] = *req.ImageURL
	}
	if req.Tags != nil {
		set["tags"] = sanitize.PlainAll(*req.Tags)
	}
	if req.Location != nil {
		set["location"] = sanitize.Plain(*req.Location)
	}
	if req.Moment != nil {
		set["moment"] = *req.Moment
	}
	if req.IsPublic != nil {
		set["isPublic"] = *req.IsPublic
	}

	if len(set) == 0 {
		httpjson.Write(w, http.StatusOK, toPostResponse(p))
		return
	}

	updated, err := h.Posts.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("post update failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, toPostResponse(updated))
}
