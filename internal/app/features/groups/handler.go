// internal/app/features/groups/handler.go
package groups

import (
	"net/http"

	groupstore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/groups"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the groups feature.
type Handler struct {
	Groups *groupstore.Store
	Log    *zap.Logger
}

// NewHandler constructs a groups Handler. It is called from the
// bootstrap BuildHandler function, where the stores and logger are
// already initialized.
func NewHandler(groups *groupstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Groups: groups,
		Log:    logger,
	}
}

// groupIDParam parses the {groupId} URL parameter. A string that is not
// a valid object id is a malformed request, not a missing group.
func groupIDParam(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupId"))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
