package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/BossEl-566/LmBlog-sub001/internal/models"
	"github.com/BossEl-566/LmBlog-sub001/internal/repository"
	"github.com/BossEl-566/LmBlog-sub001/internal/validation"
	"github.com/BossEl-566/LmBlog-sub001/internal/workflow"
)

type mockApplicationRepo struct {
	apps map[uuid.UUID]*models.Application
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: make(map[uuid.UUID]*models.Application)}
}

func (m *mockApplicationRepo) Create(_ context.Context, a *models.Application) (*models.Application, error) {
	cp := *a
	m.apps[a.ID] = &cp
	return &cp, nil
}

func (m *mockApplicationRepo) GetAll(_ context.Context, _, _ int, status models.ApplicationStatus) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range m.apps {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	a, ok := m.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockApplicationRepo) UpdateStatusCAS(_ context.Context, id uuid.UUID, from, to models.ApplicationStatus, review *models.AdminReview) (*models.Application, error) {
	a, ok := m.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if a.Status != from {
		return nil, repository.ErrConflict
	}
	a.Status = to
	if review != nil {
		a.Admin = *review
	}
	cp := *a
	return &cp, nil
}

type mockUserRepo struct {
	granted []uuid.UUID
	fail    bool
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return &models.User{ID: id, Role: models.RoleReader}, nil
}

func (m *mockUserRepo) GrantAuthorRole(_ context.Context, id uuid.UUID) error {
	if m.fail {
		return errors.New("сервис пользователей недоступен")
	}
	m.granted = append(m.granted, id)
	return nil
}

func validSubmitRequest() models.SubmitApplicationRequest {
	return models.SubmitApplicationRequest{
		FullName:          "Jane Doe",
		ContactEmail:      "jane@example.com",
		Bio:               strings.Repeat("о себе ", 10),
		WritingExperience: "intermediate",
		Niches:            []string{"tech"},
		Country:           "GH",
	}
}

func intPtr(v int) *int { return &v }

func TestApplicationService_Submit(t *testing.T) {
	repo := newMockApplicationRepo()
	svc := NewApplicationService(repo, &mockUserRepo{}, validation.BioPolicy{})

	a, err := svc.Submit(context.Background(), uuid.New(), validSubmitRequest())
	if err != nil {
		t.Fatalf("подача заявки: %v", err)
	}
	if a.Status != models.ApplicationStatusPending {
		t.Fatalf("новая заявка должна быть pending, получено %s", a.Status)
	}
	if a.Admin.ReviewDate != nil {
		t.Fatal("поля ревью не должны заполняться при подаче")
	}
}

func TestApplicationService_SubmitShortBio(t *testing.T) {
	svc := NewApplicationService(newMockApplicationRepo(), &mockUserRepo{}, validation.BioPolicy{})

	req := validSubmitRequest()
	req.Bio = strings.Repeat("a", 49)
	_, err := svc.Submit(context.Background(), uuid.New(), req)
	var verr *validation.ValidationError
	if !errors.As(err, &verr) || verr.Field != "bio" {
		t.Fatalf("ожидался ValidationError по bio, получено %v", err)
	}
}

func TestApplicationService_ApproveRecordsReviewAndGrantsRole(t *testing.T) {
	repo := newMockApplicationRepo()
	users := &mockUserRepo{}
	svc := NewApplicationService(repo, users, validation.BioPolicy{})
	ctx := context.Background()

	applicantID := uuid.New()
	a, _ := svc.Submit(ctx, applicantID, validSubmitRequest())

	a, err := svc.Review(ctx, a.ID, models.ReviewApplicationRequest{Status: models.ApplicationStatusUnderReview}, workflow.RoleAdmin)
	if err != nil {
		t.Fatalf("pending -> under_review: %v", err)
	}

	a, err = svc.Review(ctx, a.ID, models.ReviewApplicationRequest{
		Status:            models.ApplicationStatusApproved,
		Remarks:           "great fit",
		AIEvaluationScore: intPtr(8),
	}, workflow.RoleAdmin)
	if err != nil {
		t.Fatalf("under_review -> approved: %v", err)
	}

	if a.Status != models.ApplicationStatusApproved {
		t.Fatalf("статус %s вместо approved", a.Status)
	}
	if a.Admin.AIEvaluationScore != 8 || a.Admin.Remarks != "great fit" {
		t.Fatalf("поля ревью не записаны: %+v", a.Admin)
	}
	if a.Admin.ReviewDate == nil {
		t.Fatal("review_date должен быть установлен")
	}
	if len(users.granted) != 1 || users.granted[0] != applicantID {
		t.Fatalf("роль автора не выдана заявителю: %v", users.granted)
	}

	// терминальный статус — дальше ни одного перехода
	_, err = svc.Review(ctx, a.ID, models.ReviewApplicationRequest{Status: models.ApplicationStatusUnderReview}, workflow.RoleAdmin)
	if !workflow.IsInvalidTransition(err) {
		t.Fatalf("переход из approved: ожидался InvalidTransitionError, получено %v", err)
	}
}

func TestApplicationService_RejectDoesNotGrantRole(t *testing.T) {
	repo := newMockApplicationRepo()
	users := &mockUserRepo{}
	svc := NewApplicationService(repo, users, validation.BioPolicy{})
	ctx := context.Background()

	a, _ := svc.Submit(ctx, uuid.New(), validSubmitRequest())

	a, err := svc.Review(ctx, a.ID, models.ReviewApplicationRequest{
		Status:  models.ApplicationStatusRejected,
		Remarks: "недостаточно опыта",
	}, workflow.RoleAdmin)
	if err != nil {
		t.Fatalf("pending -> rejected: %v", err)
	}
	if a.Admin.AIEvaluationScore != 0 {
		t.Fatalf("оценка по умолчанию должна быть 0, получено %d", a.Admin.AIEvaluationScore)
	}
	if a.Admin.ReviewDate == nil {
		t.Fatal("review_date должен быть установлен и при отказе")
	}
	if len(users.granted) != 0 {
		t.Fatal("отказ не должен выдавать роль автора")
	}
}

func TestApplicationService_ReviewScoreOutOfRange(t *testing.T) {
	repo := newMockApplicationRepo()
	svc := NewApplicationService(repo, &mockUserRepo{}, validation.BioPolicy{})
	ctx := context.Background()

	a, _ := svc.Submit(ctx, uuid.New(), validSubmitRequest())

	_, err := svc.Review(ctx, a.ID, models.ReviewApplicationRequest{
		Status:            models.ApplicationStatusApproved,
		AIEvaluationScore: intPtr(11),
	}, workflow.RoleAdmin)
	var verr *validation.ValidationError
	if !errors.As(err, &verr) || verr.Field != "aiEvaluationScore" {
		t.Fatalf("ожидался ValidationError по aiEvaluationScore, получено %v", err)
	}

	// заявка не сдвинулась
	got, _ := repo.GetByID(ctx, a.ID)
	if got.Status != models.ApplicationStatusPending {
		t.Fatalf("отклонённое ревью не должно менять статус: %s", got.Status)
	}
}

func TestApplicationService_ApproveGrantFailureSurfaces(t *testing.T) {
	repo := newMockApplicationRepo()
	users := &mockUserRepo{fail: true}
	svc := NewApplicationService(repo, users, validation.BioPolicy{})
	ctx := context.Background()

	a, _ := svc.Submit(ctx, uuid.New(), validSubmitRequest())

	updated, err := svc.Review(ctx, a.ID, models.ReviewApplicationRequest{Status: models.ApplicationStatusApproved}, workflow.RoleAdmin)
	if err == nil {
		t.Fatal("ошибка выдачи роли должна подниматься наверх")
	}
	// решение при этом зафиксировано
	if updated == nil || updated.Status != models.ApplicationStatusApproved {
		t.Fatalf("решение должно остаться записанным: %+v", updated)
	}
}

func TestApplicationService_ReviewByNonAdmin(t *testing.T) {
	repo := newMockApplicationRepo()
	svc := NewApplicationService(repo, &mockUserRepo{}, validation.BioPolicy{})
	ctx := context.Background()

	a, _ := svc.Submit(ctx, uuid.New(), validSubmitRequest())

	_, err := svc.Review(ctx, a.ID, models.ReviewApplicationRequest{Status: models.ApplicationStatusApproved}, workflow.RoleAuthor)
	if !workflow.IsUnauthorized(err) {
		t.Fatalf("ожидался UnauthorizedError, получено %v", err)
	}
}
