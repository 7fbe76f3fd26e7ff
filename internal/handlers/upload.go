package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/BossEl-566/LmBlog-sub001/internal/logger"
	"github.com/BossEl-566/LmBlog-sub001/internal/storage"
	helpers "github.com/BossEl-566/LmBlog-sub001/internal/utils/helpers"
)

type UploadHandler struct {
	uploader storage.Uploader
}

func NewUploadHandler(uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage godoc
// @Summary Загрузка картинки (author или admin)
// @Tags uploads
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл изображения"
// @Success 201 {object} uploadResponse
// @Failure 400 {string} string "Ошибка загрузки"
// @Router /api/uploads [post]
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	log.Info("Запрос на загрузку картинки")

	err := r.ParseMultipartForm(10 << 20) // 10MB
	if err != nil {
		log.Warn("Ошибка разбора формы при загрузке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		log.Warn("Файл не найден при загрузке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Файл не найден")
		return
	}
	defer file.Close()

	contentType := handler.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		log.Warn("Недопустимый тип файла", zap.String("content_type", contentType))
		helpers.Error(w, http.StatusBadRequest, "Допустимы только изображения")
		return
	}

	key := fmt.Sprintf("uploads/%d_%s", time.Now().Unix(), filepath.Base(handler.Filename))

	url, err := h.uploader.Upload(r.Context(), key, contentType, file)
	if err != nil {
		log.Error("Ошибка загрузки в хранилище", zap.Error(err))
		helpers.Error(w, http.StatusBadGateway, "Хранилище недоступно")
		return
	}

	log.Info("Картинка загружена", zap.String("key", key))
	helpers.JSON(w, http.StatusCreated, uploadResponse{URL: url})
}
