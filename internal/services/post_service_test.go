package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/BossEl-566/LmBlog-sub001/internal/models"
	"github.com/BossEl-566/LmBlog-sub001/internal/repository"
	"github.com/BossEl-566/LmBlog-sub001/internal/validation"
	"github.com/BossEl-566/LmBlog-sub001/internal/workflow"
)

// Мок-репозиторий (заглушка)
type mockPostRepo struct {
	posts map[uuid.UUID]*models.Post
	// подменить статус перед CAS — имитация параллельного админа
	statusBeforeCAS *models.PostStatus
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[uuid.UUID]*models.Post)}
}

func (m *mockPostRepo) Create(_ context.Context, p *models.Post) (*models.Post, error) {
	cp := *p
	m.posts[p.ID] = &cp
	return &cp, nil
}

func (m *mockPostRepo) GetAll(_ context.Context, _, _ int, status models.PostStatus, _ string) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range m.posts {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPostRepo) Update(_ context.Context, p *models.Post) error {
	if _, ok := m.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	m.posts[p.ID] = &cp
	return nil
}

func (m *mockPostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	if p, ok := m.posts[id]; ok {
		p.ViewCount++
	}
	return nil
}

func (m *mockPostRepo) UpdateStatusCAS(_ context.Context, id uuid.UUID, from, to models.PostStatus) (*models.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if m.statusBeforeCAS != nil {
		p.Status = *m.statusBeforeCAS
		m.statusBeforeCAS = nil
	}
	if p.Status != from {
		return nil, repository.ErrConflict
	}
	p.Status = to
	cp := *p
	return &cp, nil
}

func docWith(text string) []models.DocumentNode {
	return []models.DocumentNode{
		{
			Type:    models.NodeParagraph,
			Content: []models.DocumentNode{{Type: models.NodeText, Text: text}},
		},
	}
}

func TestPostService_SaveDraft(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)

	p, err := svc.Save(context.Background(), uuid.New(), models.SavePostRequest{
		Title:    "Черновик",
		Tags:     []string{"Go", "go", " "},
		Document: docWith("немного текста"),
	})
	if err != nil {
		t.Fatalf("ошибка сохранения черновика: %v", err)
	}
	if p.Status != models.PostStatusDraft {
		t.Fatalf("ожидался статус draft, получен %s", p.Status)
	}
	if len(p.ContentBlocks) != 1 || p.ContentBlocks[0].Text != "немного текста" {
		t.Fatalf("блоки не сконвертированы: %+v", p.ContentBlocks)
	}
	if p.ReadingTimeMinutes != 1 {
		t.Fatalf("короткий текст должен давать 1 минуту, получено %d", p.ReadingTimeMinutes)
	}
	if len(p.Tags) != 1 || p.Tags[0] != "go" {
		t.Fatalf("теги должны нормализоваться: %v", p.Tags)
	}
}

func TestPostService_SaveSubmit(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)

	p, err := svc.Save(context.Background(), uuid.New(), models.SavePostRequest{
		Title:    "Сразу на ревью",
		Document: docWith("текст"),
		Submit:   true,
	})
	if err != nil {
		t.Fatalf("ошибка отправки: %v", err)
	}
	if p.Status != models.PostStatusPendingReview {
		t.Fatalf("ожидался статус pending_review, получен %s", p.Status)
	}
}

func TestPostService_SaveRejectsEmptyBody(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	_, err := svc.Save(context.Background(), uuid.New(), models.SavePostRequest{Title: "Пустой"})
	var verr *validation.ValidationError
	if !errors.As(err, &verr) || verr.Field != "content" {
		t.Fatalf("ожидался ValidationError по content, получено %v", err)
	}
}

func TestPostService_FullLifecycle(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	p, err := svc.Save(ctx, uuid.New(), models.SavePostRequest{Title: "Пост", Document: docWith("текст")})
	if err != nil {
		t.Fatalf("создание: %v", err)
	}

	steps := []struct {
		target models.PostStatus
		role   workflow.Role
	}{
		{models.PostStatusPendingReview, workflow.RoleAuthor},
		{models.PostStatusDraft, workflow.RoleAdmin},
		{models.PostStatusPendingReview, workflow.RoleAuthor},
		{models.PostStatusPublished, workflow.RoleAdmin},
		{models.PostStatusArchived, workflow.RoleAdmin},
		{models.PostStatusPublished, workflow.RoleAdmin},
	}
	for i, s := range steps {
		p, err = svc.Transition(ctx, p.ID, s.target, s.role)
		if err != nil {
			t.Fatalf("шаг %d (-> %s): %v", i, s.target, err)
		}
		if p.Status != s.target {
			t.Fatalf("шаг %d: статус %s вместо %s", i, p.Status, s.target)
		}
	}
}

func TestPostService_DraftToPublishedFails(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	p, _ := svc.Save(ctx, uuid.New(), models.SavePostRequest{Title: "Пост", Document: docWith("текст")})

	_, err := svc.Transition(ctx, p.ID, models.PostStatusPublished, workflow.RoleAdmin)
	if !workflow.IsInvalidTransition(err) {
		t.Fatalf("draft -> published: ожидался InvalidTransitionError, получено %v", err)
	}
	// пост не изменился
	got, _ := repo.GetByID(ctx, p.ID)
	if got.Status != models.PostStatusDraft {
		t.Fatalf("отклонённый переход не должен менять статус: %s", got.Status)
	}
}

func TestPostService_TransitionUnauthorized(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	p, _ := svc.Save(ctx, uuid.New(), models.SavePostRequest{Title: "Пост", Document: docWith("текст"), Submit: true})

	_, err := svc.Transition(ctx, p.ID, models.PostStatusPublished, workflow.RoleAuthor)
	if !workflow.IsUnauthorized(err) {
		t.Fatalf("публикация автором: ожидался UnauthorizedError, получено %v", err)
	}
}

func TestPostService_TransitionConflict(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	p, _ := svc.Save(ctx, uuid.New(), models.SavePostRequest{Title: "Пост", Document: docWith("текст"), Submit: true})

	// между чтением и CAS другой админ вернул пост в черновик
	st := models.PostStatusDraft
	repo.statusBeforeCAS = &st

	_, err := svc.Transition(ctx, p.ID, models.PostStatusPublished, workflow.RoleAdmin)
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("ожидался ErrConflict, получено %v", err)
	}
}

func TestPostService_TransitionNotFound(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	_, err := svc.Transition(context.Background(), uuid.New(), models.PostStatusPublished, workflow.RoleAdmin)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("ожидался ErrNotFound, получено %v", err)
	}
}

func TestPostService_UpdateRecomputesDerivedFields(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	p, _ := svc.Save(ctx, uuid.New(), models.SavePostRequest{Title: "Пост", Document: docWith("старый текст")})

	updated, err := svc.Update(ctx, p.ID, models.SavePostRequest{
		Title: "Пост",
		Document: []models.DocumentNode{
			{Type: models.NodeHeading, Attrs: &models.NodeAttrs{Level: 1}, Content: []models.DocumentNode{{Type: models.NodeText, Text: "новый"}}},
			{Type: models.NodeParagraph, Content: []models.DocumentNode{{Type: models.NodeText, Text: "текст"}}},
		},
	})
	if err != nil {
		t.Fatalf("обновление: %v", err)
	}
	if len(updated.ContentBlocks) != 2 || updated.ContentBlocks[0].Type != models.BlockHeading {
		t.Fatalf("блоки не переконвертированы: %+v", updated.ContentBlocks)
	}
	if updated.ReadingTimeMinutes != 1 {
		t.Fatalf("время чтения должно пересчитываться, получено %d", updated.ReadingTimeMinutes)
	}
}

func TestPostService_GetByIDCountsViewOnlyPublished(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	p, _ := svc.Save(ctx, uuid.New(), models.SavePostRequest{Title: "Пост", Document: docWith("текст")})

	got, err := svc.GetByID(ctx, p.ID, true)
	if err != nil {
		t.Fatalf("чтение: %v", err)
	}
	if got.ViewCount != 0 {
		t.Fatalf("просмотры черновика не считаются, получено %d", got.ViewCount)
	}

	repo.posts[p.ID].Status = models.PostStatusPublished
	got, _ = svc.GetByID(ctx, p.ID, true)
	if got.ViewCount != 1 {
		t.Fatalf("просмотр опубликованного должен считаться, получено %d", got.ViewCount)
	}
}
