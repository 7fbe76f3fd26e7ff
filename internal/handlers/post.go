package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/BossEl-566/LmBlog-sub001/internal/logger"
	"github.com/BossEl-566/LmBlog-sub001/internal/middleware"
	"github.com/BossEl-566/LmBlog-sub001/internal/models"
	"github.com/BossEl-566/LmBlog-sub001/internal/services"
	helpers "github.com/BossEl-566/LmBlog-sub001/internal/utils/helpers"
	"github.com/BossEl-566/LmBlog-sub001/internal/workflow"
)

type PostHandler struct {
	postService    services.PostService
	previewService services.PreviewService
}

func NewPostHandler(postService services.PostService, previewService services.PreviewService) *PostHandler {
	return &PostHandler{postService: postService, previewService: previewService}
}

type previewRequest struct {
	Markdown string `json:"markdown"`
}

func parseLimitOffset(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

func ctxUserID(r *http.Request) (uuid.UUID, bool) {
	raw, ok := r.Context().Value(middleware.ContextUserID).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	return id, err == nil
}

func ctxRole(r *http.Request) workflow.Role {
	role, _ := r.Context().Value(middleware.ContextRole).(string)
	return workflow.Role(role)
}

// ListPublished godoc
// @Summary Опубликованные посты
// @Tags posts
// @Produce json
// @Param limit query int false "Максимум записей"
// @Param offset query int false "Смещение"
// @Param tag query string false "Фильтр по тегу"
// @Success 200 {array} models.Post
// @Router /api/posts [get]
func (h *PostHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)
	list, err := h.postService.GetAll(r.Context(), limit, offset, models.PostStatusPublished, r.URL.Query().Get("tag"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetPost godoc
// @Summary Пост по ID (только опубликованный)
// @Tags posts
// @Produce json
// @Param id path string true "ID поста"
// @Success 200 {object} models.Post
// @Failure 404 {string} string "Не найдено"
// @Router /api/posts/{id} [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	p, err := h.postService.GetByID(r.Context(), id, true)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	// черновики и архив наружу не отдаём
	if !p.Status.IsPublished() {
		helpers.Error(w, http.StatusNotFound, "Не найдено")
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// CreatePost godoc
// @Summary Создать пост: черновик или сразу на ревью (только author)
// @Tags posts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.SavePostRequest true "Данные поста"
// @Success 201 {object} models.Post
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/posts [post]
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := ctxUserID(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не удалось определить пользователя")
		return
	}

	var req models.SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при создании поста", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	p, err := h.postService.Save(r.Context(), authorID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, p)
}

// UpdatePost godoc
// @Summary Обновить пост (автор — только свой)
// @Tags posts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID поста"
// @Param input body models.SavePostRequest true "Новое содержимое"
// @Success 200 {object} models.Post
// @Router /api/posts/{id} [put]
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	var req models.SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при обновлении поста", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	if !h.ownsOrAdmin(w, r, id) {
		return
	}

	p, err := h.postService.Update(r.Context(), id, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// SubmitPost godoc
// @Summary Отправить черновик на ревью (только автор поста)
// @Tags posts
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID поста"
// @Success 200 {object} models.Post
// @Failure 409 {string} string "Недопустимый переход"
// @Router /api/posts/{id}/submit [post]
func (h *PostHandler) SubmitPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	if !h.ownsOrAdmin(w, r, id) {
		return
	}

	p, err := h.postService.Transition(r.Context(), id, models.PostStatusPendingReview, workflow.RoleAuthor)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// AdminListPosts godoc
// @Summary Посты в любом статусе (только admin)
// @Tags admin-posts
// @Security ApiKeyAuth
// @Produce json
// @Param status query string false "Фильтр по статусу"
// @Param tag query string false "Фильтр по тегу"
// @Success 200 {array} models.Post
// @Router /api/admin/posts [get]
func (h *PostHandler) AdminListPosts(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)
	status := models.PostStatus(r.URL.Query().Get("status"))
	list, err := h.postService.GetAll(r.Context(), limit, offset, status, r.URL.Query().Get("tag"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// AdminGetPost godoc
// @Summary Пост по ID в любом статусе (только admin)
// @Tags admin-posts
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID поста"
// @Success 200 {object} models.Post
// @Router /api/admin/posts/{id} [get]
func (h *PostHandler) AdminGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}
	p, err := h.postService.GetByID(r.Context(), id, false)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// ChangeStatus godoc
// @Summary Переход статуса поста (только admin)
// @Tags admin-posts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID поста"
// @Param input body models.ChangePostStatusRequest true "Целевой статус"
// @Success 200 {object} models.Post
// @Failure 409 {string} string "Недопустимый переход"
// @Router /api/admin/posts/{id}/status [post]
func (h *PostHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	var req models.ChangePostStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	p, err := h.postService.Transition(r.Context(), id, req.Status, workflow.RoleAdmin)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, p)
}

// DeletePost godoc
// @Summary Удалить пост (только admin)
// @Tags admin-posts
// @Security ApiKeyAuth
// @Param id path string true "ID поста"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/posts/{id} [delete]
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}
	if err := h.postService.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "Удалено")
}

// Preview godoc
// @Summary Предпросмотр markdown-фолбэка (только admin)
// @Tags admin-posts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body previewRequest true "Markdown"
// @Success 200 {string} string "HTML"
// @Router /api/admin/posts/preview [post]
func (h *PostHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	helpers.JSON(w, http.StatusOK, h.previewService.RenderPreview(req.Markdown))
}

// ownsOrAdmin: автор работает только со своими постами, админ — с любыми.
func (h *PostHandler) ownsOrAdmin(w http.ResponseWriter, r *http.Request, id uuid.UUID) bool {
	if ctxRole(r) == workflow.RoleAdmin {
		return true
	}
	userID, ok := ctxUserID(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не удалось определить пользователя")
		return false
	}
	p, err := h.postService.GetByID(r.Context(), id, false)
	if err != nil {
		writeDomainError(w, err)
		return false
	}
	if p.AuthorID != userID {
		logger.WithCtx(r.Context()).Warn("Попытка работы с чужим постом",
			zap.String("post_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		helpers.Error(w, http.StatusForbidden, "Доступ запрещён")
		return false
	}
	return true
}
