package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BossEl-566/LmBlog-sub001/internal/editor"
	"github.com/BossEl-566/LmBlog-sub001/internal/logger"
	"github.com/BossEl-566/LmBlog-sub001/internal/models"
	"github.com/BossEl-566/LmBlog-sub001/internal/repository"
	"github.com/BossEl-566/LmBlog-sub001/internal/validation"
	"github.com/BossEl-566/LmBlog-sub001/internal/workflow"
)

type PostService interface {
	Save(ctx context.Context, authorID uuid.UUID, req models.SavePostRequest) (*models.Post, error)
	Update(ctx context.Context, id uuid.UUID, req models.SavePostRequest) (*models.Post, error)
	GetAll(ctx context.Context, limit, offset int, status models.PostStatus, tag string) ([]*models.Post, error)
	GetByID(ctx context.Context, id uuid.UUID, countView bool) (*models.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Transition(ctx context.Context, id uuid.UUID, target models.PostStatus, role workflow.Role) (*models.Post, error)
}

type postService struct {
	repo repository.PostRepo
}

func NewPostService(repo repository.PostRepo) PostService {
	return &postService{repo: repo}
}

// Save создаёт пост: черновиком (draft) или сразу на ревью
// (pending_review) — оба статуса входные, а не результат перехода.
func (s *postService) Save(ctx context.Context, authorID uuid.UUID, req models.SavePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание поста",
		zap.String("author_id", authorID.String()),
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.Bool("submit", req.Submit),
		zap.Int("nodes", len(req.Document)),
	)

	plain := strings.TrimSpace(req.ContentMarkdown)
	if plain == "" {
		plain = editor.PlainText(req.Document)
	}

	if verr := validation.ValidatePostSubmission(&req, plain); verr != nil {
		log.Warn("Валидация поста не пройдена", zap.String("field", verr.Field), zap.Error(verr))
		return nil, verr
	}

	status := models.PostStatusDraft
	if req.Submit {
		status = models.PostStatusPendingReview
	}

	p := &models.Post{
		ID:                 uuid.New(),
		AuthorID:           authorID,
		Title:              strings.TrimSpace(req.Title),
		Excerpt:            strings.TrimSpace(req.Excerpt),
		Status:             status,
		Tags:               normalizeTags(req.Tags),
		Category:           strings.TrimSpace(req.Category),
		CoverImage:         req.CoverImage,
		ContentBlocks:      editor.ConvertDocument(req.Document),
		ContentMarkdown:    plain,
		ReadingTimeMinutes: editor.ReadingTimeMinutes(plain),
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error("Ошибка создания поста (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Пост создан",
		zap.String("id", created.ID.String()),
		zap.String("status", string(created.Status)),
		zap.Int("blocks", len(created.ContentBlocks)),
		zap.Int("reading_minutes", created.ReadingTimeMinutes),
	)
	return created, nil
}

// Update перезаписывает поля поста: дерево конвертируется заново,
// время чтения пересчитывается. Статус не трогаем — он меняется
// только через Transition.
func (s *postService) Update(ctx context.Context, id uuid.UUID, req models.SavePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление поста", zap.String("id", id.String()))

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Пост для обновления не найден (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	plain := strings.TrimSpace(req.ContentMarkdown)
	if plain == "" {
		plain = editor.PlainText(req.Document)
	}

	if verr := validation.ValidatePostSubmission(&req, plain); verr != nil {
		log.Warn("Валидация поста не пройдена", zap.String("field", verr.Field), zap.Error(verr))
		return nil, verr
	}

	p.Title = strings.TrimSpace(req.Title)
	p.Excerpt = strings.TrimSpace(req.Excerpt)
	p.Tags = normalizeTags(req.Tags)
	p.Category = strings.TrimSpace(req.Category)
	p.CoverImage = req.CoverImage
	p.ContentBlocks = editor.ConvertDocument(req.Document)
	p.ContentMarkdown = plain
	p.ReadingTimeMinutes = editor.ReadingTimeMinutes(plain)

	if err := s.repo.Update(ctx, p); err != nil {
		log.Error("Ошибка обновления поста (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	log.Info("Пост обновлён", zap.String("id", id.String()), zap.Int("blocks", len(p.ContentBlocks)))
	return p, nil
}

func (s *postService) GetAll(ctx context.Context, limit, offset int, status models.PostStatus, tag string) ([]*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка постов",
		zap.Int("limit", limit),
		zap.Int("offset", offset),
		zap.String("status", string(status)),
		zap.String("tag", tag),
	)

	list, err := s.repo.GetAll(ctx, limit, offset, status, tag)
	if err != nil {
		log.Error("Ошибка получения списка постов (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список постов получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID, countView bool) (*models.Post, error) {
	log := logger.WithCtx(ctx)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Пост не найден (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	if countView && p.Status.IsPublished() {
		if err := s.repo.IncrementViews(ctx, id); err != nil {
			// счётчик не критичен, пост отдаём
			log.Warn("Не удалось увеличить счётчик просмотров", zap.String("id", id.String()), zap.Error(err))
		} else {
			p.ViewCount++
		}
	}

	return p, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление поста", zap.String("id", id.String()))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления поста (repo)", zap.String("id", id.String()), zap.Error(err))
		return err
	}

	log.Info("Пост удалён", zap.String("id", id.String()))
	return nil
}

// Transition выполняет переход статуса: читает текущий статус, сверяет
// ребро и роль с таблицей и применяет новый статус compare-and-swap'ом.
// Отклонённый переход не меняет ничего.
func (s *postService) Transition(ctx context.Context, id uuid.UUID, target models.PostStatus, role workflow.Role) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Переход статуса поста",
		zap.String("id", id.String()),
		zap.String("target", string(target)),
		zap.String("role", string(role)),
	)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Пост для перехода не найден (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	if err := workflow.CheckPost(p.Status, target, role); err != nil {
		log.Warn("Переход отклонён",
			zap.String("id", id.String()),
			zap.String("from", string(p.Status)),
			zap.String("to", string(target)),
			zap.Error(err),
		)
		return nil, err
	}

	updated, err := s.repo.UpdateStatusCAS(ctx, id, p.Status, target)
	if err != nil {
		log.Error("Ошибка применения перехода (repo)",
			zap.String("id", id.String()),
			zap.String("from", string(p.Status)),
			zap.String("to", string(target)),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("Статус поста изменён",
		zap.String("id", id.String()),
		zap.String("from", string(p.Status)),
		zap.String("to", string(updated.Status)),
	)
	return updated, nil
}

func normalizeTags(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
