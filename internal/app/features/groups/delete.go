// internal/app/features/groups/delete.go
package groups

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/secrets"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDeleteGroup handles DELETE /api/groups/{groupId}. Posts and
// comments under the group are left in place; they become unreachable
// through the group listing but keep their own ids.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := groupIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	var req passwordRequest
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

	deleted, err := h.Groups.Delete(ctx, id)
	if err != nil {
		h.Log.Error("group delete failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w)
		return
	}

	httpjson.Message(w, http.StatusOK, "그룹 삭제 성공")
}
