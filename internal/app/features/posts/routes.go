// internal/app/features/posts/routes.go
package posts

import (
	"github.com/go-chi/chi/v5"
)

// GroupRoutes returns the subrouter mounted at
// /api/groups/{groupId}/posts by the groups feature.
func GroupRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreatePost)
	r.Get("/", h.HandleListPosts)

	return r
}

// Routes returns the subrouter for /api/posts. commentRoutes serves the
// post-scoped comment endpoints (/api/posts/{postId}/comments) and is
// built by the comments feature.
func Routes(h *Handler, commentRoutes chi.Router) chi.Router {
	r := chi.NewRouter()

	r.Route("/{postId}", func(pr chi.Router) {
		// DETAIL
		pr.Get("/", h.HandlePostDetail)

		// UPDATE / DELETE (password-gated)
		pr.Patch("/", h.HandleUpdatePost)
		pr.Delete("/", h.HandleDeletePost)

		// ACCESS CHECKS
		pr.Post("/verify-password", h.HandleVerifyPassword)
		pr.Get("/is-public", h.HandleIsPublic)

		// ENGAGEMENT
		pr.Post("/like", h.HandleLikePost)

		// COMMENTS
		pr.Mount("/comments", commentRoutes)
	})

	return r
}
