package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BossEl-566/LmBlog-sub001/internal/logger"
	"github.com/BossEl-566/LmBlog-sub001/internal/models"
	"github.com/BossEl-566/LmBlog-sub001/internal/repository"
	"github.com/BossEl-566/LmBlog-sub001/internal/validation"
	"github.com/BossEl-566/LmBlog-sub001/internal/workflow"
)

type ApplicationService interface {
	Submit(ctx context.Context, applicantID uuid.UUID, req models.SubmitApplicationRequest) (*models.Application, error)
	GetAll(ctx context.Context, limit, offset int, status models.ApplicationStatus) ([]*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	Review(ctx context.Context, id uuid.UUID, req models.ReviewApplicationRequest, role workflow.Role) (*models.Application, error)
}

type applicationService struct {
	repo      repository.ApplicationRepo
	users     repository.UserRepo
	bioPolicy validation.BioPolicy
}

func NewApplicationService(repo repository.ApplicationRepo, users repository.UserRepo, bioPolicy validation.BioPolicy) ApplicationService {
	return &applicationService{repo: repo, users: users, bioPolicy: bioPolicy}
}

// Submit создаёт заявку в статусе pending. Уникальность «одна заявка на
// пользователя» обеспечивает БД (unique index по applicant_id).
func (s *applicationService) Submit(ctx context.Context, applicantID uuid.UUID, req models.SubmitApplicationRequest) (*models.Application, error) {
	log := logger.WithCtx(ctx)
	log.Info("Подача заявки на авторство",
		zap.String("applicant_id", applicantID.String()),
		zap.String("full_name", strings.TrimSpace(req.FullName)),
	)

	if verr := validation.ValidateApplicationSubmission(&req, s.bioPolicy); verr != nil {
		log.Warn("Валидация заявки не пройдена", zap.String("field", verr.Field), zap.Error(verr))
		return nil, verr
	}

	a := &models.Application{
		ID:                uuid.New(),
		ApplicantID:       applicantID,
		FullName:          strings.TrimSpace(req.FullName),
		ContactEmail:      strings.TrimSpace(req.ContactEmail),
		PhoneNumber:       strings.TrimSpace(req.PhoneNumber),
		Bio:               strings.TrimSpace(req.Bio),
		WritingExperience: req.WritingExperience,
		Niches:            req.Niches,
		SocialLinks:       req.SocialLinks,
		SamplePosts:       req.SamplePosts,
		Country:           strings.TrimSpace(req.Country),
		PreferredLanguage: req.PreferredLanguage,
		Status:            models.ApplicationStatusPending,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания заявки (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Заявка создана", zap.String("id", created.ID.String()))
	return created, nil
}

func (s *applicationService) GetAll(ctx context.Context, limit, offset int, status models.ApplicationStatus) ([]*models.Application, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка заявок",
		zap.Int("limit", limit),
		zap.Int("offset", offset),
		zap.String("status", string(status)),
	)

	list, err := s.repo.GetAll(ctx, limit, offset, status)
	if err != nil {
		log.Error("Ошибка получения списка заявок (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список заявок получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *applicationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Заявка не найдена (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return a, nil
}

// Review выполняет переход статуса заявки. Для approved и rejected в том
// же атомарном апдейте пишутся remarks, ai_evaluation_score (0–10, по
// умолчанию 0) и review_date. После успешного approved заявителю
// выдаётся роль автора — уже вне движка переходов.
func (s *applicationService) Review(ctx context.Context, id uuid.UUID, req models.ReviewApplicationRequest, role workflow.Role) (*models.Application, error) {
	log := logger.WithCtx(ctx)
	log.Info("Ревью заявки",
		zap.String("id", id.String()),
		zap.String("target", string(req.Status)),
		zap.String("role", string(role)),
	)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Заявка для ревью не найдена (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	if err := workflow.CheckApplication(a.Status, req.Status, role); err != nil {
		log.Warn("Переход заявки отклонён",
			zap.String("id", id.String()),
			zap.String("from", string(a.Status)),
			zap.String("to", string(req.Status)),
			zap.Error(err),
		)
		return nil, err
	}

	var review *models.AdminReview
	if req.Status == models.ApplicationStatusApproved || req.Status == models.ApplicationStatusRejected {
		score := 0
		if req.AIEvaluationScore != nil {
			score = *req.AIEvaluationScore
		}
		if score < 0 || score > 10 {
			verr := &validation.ValidationError{Field: "aiEvaluationScore", Reason: "оценка должна быть от 0 до 10"}
			log.Warn("Некорректная оценка ревью", zap.Int("score", score))
			return nil, verr
		}
		now := time.Now()
		review = &models.AdminReview{
			Remarks:           strings.TrimSpace(req.Remarks),
			AIEvaluationScore: score,
			ReviewDate:        &now,
		}
	}

	updated, err := s.repo.UpdateStatusCAS(ctx, id, a.Status, req.Status, review)
	if err != nil {
		log.Error("Ошибка применения перехода заявки (repo)",
			zap.String("id", id.String()),
			zap.String("from", string(a.Status)),
			zap.String("to", string(req.Status)),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("Статус заявки изменён",
		zap.String("id", id.String()),
		zap.String("from", string(a.Status)),
		zap.String("to", string(updated.Status)),
	)

	if updated.Status == models.ApplicationStatusApproved {
		if err := s.users.GrantAuthorRole(ctx, updated.ApplicantID); err != nil {
			// решение по заявке уже зафиксировано, но роль не выдана —
			// отдаём ошибку наверх, чтобы её не потеряли
			log.Error("Заявка одобрена, но выдача роли автора не удалась",
				zap.String("applicant_id", updated.ApplicantID.String()),
				zap.Error(err),
			)
			return updated, fmt.Errorf("выдача роли автора: %w", err)
		}
		log.Info("Роль автора выдана", zap.String("applicant_id", updated.ApplicantID.String()))
	}

	return updated, nil
}
