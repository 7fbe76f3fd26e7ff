package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/BossEl-566/LmBlog-sub001/internal/logger"
	"github.com/BossEl-566/LmBlog-sub001/internal/models"
	"github.com/BossEl-566/LmBlog-sub001/internal/services"
	helpers "github.com/BossEl-566/LmBlog-sub001/internal/utils/helpers"
	"github.com/BossEl-566/LmBlog-sub001/internal/workflow"
)

type ApplicationHandler struct {
	applicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// SubmitApplication godoc
// @Summary Подать заявку на авторство
// @Tags applications
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.SubmitApplicationRequest true "Данные заявки"
// @Success 201 {object} models.Application
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/applications [post]
func (h *ApplicationHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	applicantID, ok := ctxUserID(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не удалось определить пользователя")
		return
	}

	var req models.SubmitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при подаче заявки", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	a, err := h.applicationService.Submit(r.Context(), applicantID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, a)
}

// AdminListApplications godoc
// @Summary Список заявок (только admin)
// @Tags admin-applications
// @Security ApiKeyAuth
// @Produce json
// @Param status query string false "Фильтр по статусу"
// @Success 200 {array} models.Application
// @Router /api/admin/applications [get]
func (h *ApplicationHandler) AdminListApplications(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)
	status := models.ApplicationStatus(r.URL.Query().Get("status"))
	list, err := h.applicationService.GetAll(r.Context(), limit, offset, status)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// AdminGetApplication godoc
// @Summary Заявка по ID (только admin)
// @Tags admin-applications
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID заявки"
// @Success 200 {object} models.Application
// @Failure 404 {string} string "Не найдено"
// @Router /api/admin/applications/{id} [get]
func (h *ApplicationHandler) AdminGetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}
	a, err := h.applicationService.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// ReviewApplication godoc
// @Summary Переход статуса заявки (только admin)
// @Tags admin-applications
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID заявки"
// @Param input body models.ReviewApplicationRequest true "Целевой статус и поля ревью"
// @Success 200 {object} models.Application
// @Failure 409 {string} string "Недопустимый переход"
// @Router /api/admin/applications/{id}/status [post]
func (h *ApplicationHandler) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	var req models.ReviewApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	a, err := h.applicationService.Review(r.Context(), id, req, workflow.RoleAdmin)
	if err != nil {
		// решение могло уже зафиксироваться (ошибка выдачи роли) —
		// Review в этом случае возвращает и заявку, и ошибку
		if a != nil {
			helpers.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeDomainError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}
