// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter for /api/groups. postRoutes serves the
// group-scoped post endpoints (/api/groups/{groupId}/posts) and is
// built by the posts feature.
func Routes(h *Handler, postRoutes chi.Router) chi.Router {
	r := chi.NewRouter()

	// CREATE / LIST
	r.Post("/", h.HandleCreateGroup)
	r.Get("/", h.HandleListGroups)

	r.Route("/{groupId}", func(gr chi.Router) {
		// DETAIL
		gr.Get("/", h.HandleGroupDetail)

		// UPDATE / DELETE (password-gated)
		gr.Patch("/", h.HandleUpdateGroup)
		gr.Delete("/", h.HandleDeleteGroup)

		// ACCESS CHECKS
		gr.Post("/verify-password", h.HandleVerifyPassword)
		gr.Get("/is-public", h.HandleIsPublic)

		// ENGAGEMENT
		gr.Post("/like", h.HandleLikeGroup)

		// POSTS
		gr.Mount("/posts", postRoutes)
	})

	return r
}
