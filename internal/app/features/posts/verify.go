// internal/app/features/posts/verify.go
package posts

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

// HandleVerifyPassword handles POST /api/posts/{postId}/verify-password.
func (h *Handler) HandleVerifyPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(r)
	if !ok {
		httpjson.BadRequest(w)
		return
	}

	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
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

	if !secrets.Verify(p.PostPassword, req.Password) {
		httpjson.Unauthorized(w)
		return
	}

	httpjson.Message(w, http.StatusOK, httpjson.MsgPasswordVerified)
}
