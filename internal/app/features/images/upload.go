// internal/app/features/images/upload.go
package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/httpjson"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/timeouts"
	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUploadBytes caps a single image upload at 10 MiB.
const maxUploadBytes = 10 << 20

type uploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// HandleUpload handles POST /api/image. The file arrives as the
// multipart field "image", is written under the upload dir with a
// uuid-prefixed name, and a record is inserted into the images
// collection.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "이미지 파일이 필요합니다")
		return
	}
	defer file.Close()

	name := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(header.Filename))
	path := filepath.Join(h.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		h.Log.Error("upload file create failed", zap.String("path", path), zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(path)
		h.Log.Error("upload write failed", zap.String("path", path), zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		h.Log.Error("upload close failed", zap.String("path", path), zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	url := h.BaseURL + h.UploadURL + "/" + name

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Images.Create(ctx, models.Image{
		FileName:    name,
		ContentType: header.Header.Get("Content-Type"),
		URL:         url,
	}); err != nil {
		h.Log.Error("image record insert failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Write(w, http.StatusOK, uploadResponse{ImageURL: url})
}

// sanitizeFilename strips path components and replaces characters that
// could be problematic in filenames.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but keep the extension if present.
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
