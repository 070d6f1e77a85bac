// internal/app/features/comments/routes.go
package comments

import (
	"github.com/go-chi/chi/v5"
)

// PostRoutes returns the subrouter mounted at
// /api/posts/{postId}/comments by the posts feature.
func PostRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreateComment)
	r.Get("/", h.HandleListComments)

	return r
}

// Routes returns the subrouter for /api/comments.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/{commentId}", func(cr chi.Router) {
		cr.Put("/", h.HandleUpdateComment)
		cr.Delete("/", h.HandleDeleteComment)
	})

	return r
}
