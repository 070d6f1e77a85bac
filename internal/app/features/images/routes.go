// internal/app/features/images/routes.go
package images

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter for /api/image.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleUpload)

	return r
}
