package handlers

import (
	"errors"
	"net/http"

	"github.com/BossEl-566/LmBlog-sub001/internal/repository"
	helpers "github.com/BossEl-566/LmBlog-sub001/internal/utils/helpers"
	"github.com/BossEl-566/LmBlog-sub001/internal/validation"
	"github.com/BossEl-566/LmBlog-sub001/internal/workflow"
)

// writeDomainError переводит ошибки ядра в HTTP-коды:
// валидация — 400, чужая роль — 403, нет сущности — 404,
// недопустимый переход и гонка статусов — 409.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.Error(w, http.StatusBadRequest, verr.Error())
	case workflow.IsUnauthorized(err):
		helpers.Error(w, http.StatusForbidden, err.Error())
	case workflow.IsInvalidTransition(err):
		helpers.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrConflict):
		helpers.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, err.Error())
	default:
		helpers.Error(w, http.StatusInternalServerError, "внутренняя ошибка")
	}
}
