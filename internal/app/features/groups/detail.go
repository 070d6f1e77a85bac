// internal/app/features/groups/detail.go
package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleGroupDetail handles GET /api/groups/{groupId}.
func (h *Handler) HandleGroupDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := groupIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
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

	httpjson.Write(w, http.StatusOK, toGroupResponse(g))
}

// HandleIsPublic handles GET /api/groups/{groupId}/is-public.
func (h *Handler) HandleIsPublic(w http.ResponseWriter, r *http.Request) {
	id, ok := groupIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
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

	httpjson.Write(w, http.StatusOK, isPublicResponse{ID: g.ID.Hex(), IsPublic: g.IsPublic})
}
