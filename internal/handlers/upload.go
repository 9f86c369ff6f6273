package handlers

import (
	"EventKeeper/internal/config"
	"EventKeeper/internal/service"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UploadHandler — одиночная загрузка картинки.
type UploadHandler struct {
	Uploads *service.UploadService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewUploadHandler создаёт хендлер загрузки
func NewUploadHandler(uploads *service.UploadService, logger *zap.SugaredLogger, cfg *config.Config) *UploadHandler {
	return &UploadHandler{Uploads: uploads, Logger: logger, Config: cfg}
}

// UploadImage — POST /upload-image, multipart c полем image.
// Успех: 200 + относительный imageUrl.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	maxBody := int64(h.Config.MaxUploadMB)<<20 + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadImage: invalid multipart form", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "missing image file"})
		return
	}
	defer file.Close()

	if header.Filename == "" || header.Size == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "empty file"})
		return
	}

	path, err := h.Uploads.SaveImage(file, header.Filename)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			writeError(w, err)
			return
		}
		h.Logger.Errorw("UploadImage: failed to save", "name", header.Filename, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "imageUrl": "/" + path})
}
