// internal/app/features/images/handler.go
package images

import (
	imagestore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/images"
	"go.uber.org/zap"
)

// Handler is the dependency container for the image upload feature.
// BaseURL+UploadURL is the public prefix uploaded files are served
// under; UploadDir is where they land on disk.
type Handler struct {
	Images    *imagestore.Store
	BaseURL   string
	UploadDir string
	UploadURL string
	Log       *zap.Logger
}

func NewHandler(images *imagestore.Store, baseURL, uploadDir, uploadURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Images:    images,
		BaseURL:   baseURL,
		UploadDir: uploadDir,
		UploadURL: uploadURL,
		Log:       logger,
	}
}
