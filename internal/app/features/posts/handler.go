// internal/app/features/posts/handler.go
package posts

import (
	"net/http"

	groupstore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/groups"
	poststore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/posts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the posts feature.
// Client is needed because create and delete pair a post write with a
// group postCount update inside one transaction.
type Handler struct {
	Posts  *poststore.Store
	Groups *groupstore.Store
	Client *mongo.Client
	Log    *zap.Logger
}

func NewHandler(posts *poststore.Store, groups *groupstore.Store, client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Posts:  posts,
		Groups: groups,
		Client: client,
		Log:    logger,
	}
}

func postIDParam(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "postId"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func groupIDParam(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupId"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
