// internal/app/features/groups/update.go
package groups

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

// HandleUpdateGroup handles PATCH /api/groups/{groupId}. The group
// password authorizes the change; only fields present in the body are
// written.
func (h *Handler) HandleUpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := groupIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	var req updateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("group lookup failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	if !secrets.Verify(g.Password, req.Password) {
		httpjson.Forbidden(w)
		return
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = sanitize.Plain(*req.Name)
	}
	if req.ImageURL != nil {
		set["imageUrl"] = *req.ImageURL
	}
	if req.IsPublic != nil {
		set["isPublic"] = *req.IsPublic
	}
	if req.Introduction != nil {
		set["introduction"] = sanitize.Plain(*req.Introduction)
	}

	if len(set) == 0 {
		httpjson.Write(w, http.StatusOK, toGroupResponse(g))
		return
	}

	updated, err := h.Groups.UpdateInfo(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w)
			return
		}
		h.Log.Error("group update failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, toGroupResponse(updated))
}
