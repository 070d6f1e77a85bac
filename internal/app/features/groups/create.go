// internal/app/features/groups/create.go
package groups

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/sanitize"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/secrets"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreateGroup handles POST /api/groups.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w)
		return
	}
	if req.Name == "" || req.Password == "" || req.ImageURL == "" ||
		req.Introduction == "" || req.IsPublic == nil {
		httpjson.BadRequest(w)
		return
	}

	hash, err := secrets.Hash(req.Password)
	if err != nil {
		h.Log.Error("group password hash failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.Create(ctx, models.Group{
		Name:         sanitize.Plain(req.Name),
		ImageURL:     req.ImageURL,
		IsPublic:     *req.IsPublic,
		Introduction: sanitize.Plain(req.Introduction),
		Password:     hash,
	})
	if err != nil {
		h.Log.Error("group create failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusCreated, toGroupResponse(g))
}
