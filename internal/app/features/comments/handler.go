// internal/app/features/comments/handler.go
package comments

import (
	"net/http"

	commentstore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/comments"
	poststore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/posts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the comments feature.
// The post store is needed for the existence check on create, the
// postTitle join on list, and the commentCount adjustments.
type Handler struct {
	Comments *commentstore.Store
	Posts    *poststore.Store
	Log      *zap.Logger
}

func NewHandler(comments *commentstore.Store, posts *poststore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Comments: comments,
		Posts:    posts,
		Log:      logger,
	}
}

func commentIDParam(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "commentId"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func postIDParam(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "postId"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
