// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	commentsfeature "github.com/codeit-toyproject-five/zogakzip/internal/app/features/comments"
	groupsfeature "github.com/codeit-toyproject-five/zogakzip/internal/app/features/groups"
	healthfeature "github.com/codeit-toyproject-five/zogakzip/internal/app/features/health"
	imagesfeature "github.com/codeit-toyproject-five/zogakzip/internal/app/features/images"
	postsfeature "github.com/codeit-toyproject-five/zogakzip/internal/app/features/posts"
	commentstore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/comments"
	groupstore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/groups"
	imagestore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/images"
	poststore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/posts"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The API surface lives under /api; the
// post and comment routers nest under their parent entity (groups own
// posts, posts own comments) so the nested routes see the parent id.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	groups := groupstore.New(deps.MongoDatabase)
	posts := poststore.New(deps.MongoDatabase)
	comments := commentstore.New(deps.MongoDatabase)
	images := imagestore.New(deps.MongoDatabase)

	groupsHandler := groupsfeature.NewHandler(groups, logger)
	postsHandler := postsfeature.NewHandler(posts, groups, deps.MongoClient, logger)
	commentsHandler := commentsfeature.NewHandler(comments, posts, logger)
	imagesHandler := imagesfeature.NewHandler(images, appCfg.BaseURL, appCfg.UploadDir, appCfg.UploadURL, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/groups", groupsfeature.Routes(groupsHandler, postsfeature.GroupRoutes(postsHandler)))
		api.Mount("/posts", postsfeature.Routes(postsHandler, commentsfeature.PostRoutes(commentsHandler)))
		api.Mount("/comments", commentsfeature.Routes(commentsHandler))
		api.Mount("/image", imagesfeature.Routes(imagesHandler))
	})

	// Uploaded images with pre-compressed file support (gzip/brotli)
	r.Handle(appCfg.UploadURL+"/*", fileserver.Handler(appCfg.UploadURL, appCfg.UploadDir))

	return r, nil
}
