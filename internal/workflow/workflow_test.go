package workflow

import (
	"testing"

	"github.com/BossEl-566/LmBlog-sub001/internal/models"
)

func TestPostTable_FullLifecycle(t *testing.T) {
	// черновик -> ревью -> возврат -> ревью -> публикация -> архив -> публикация
	steps := []struct {
		from models.PostStatus
		to   models.PostStatus
		role Role
	}{
		{models.PostStatusDraft, models.PostStatusPendingReview, RoleAuthor},
		{models.PostStatusPendingReview, models.PostStatusDraft, RoleAdmin},
		{models.PostStatusDraft, models.PostStatusPendingReview, RoleAuthor},
		{models.PostStatusPendingReview, models.PostStatusPublished, RoleAdmin},
		{models.PostStatusPublished, models.PostStatusArchived, RoleAdmin},
		{models.PostStatusArchived, models.PostStatusPublished, RoleAdmin},
	}

	for i, s := range steps {
		if err := CheckPost(s.from, s.to, s.role); err != nil {
			t.Fatalf("шаг %d: переход %s -> %s (%s) должен быть разрешён: %v", i, s.from, s.to, s.role, err)
		}
	}
}

func TestPostTable_DraftToPublishedForbidden(t *testing.T) {
	// публикация минуя ревью запрещена для любой роли
	for _, role := range []Role{RoleAuthor, RoleAdmin} {
		err := CheckPost(models.PostStatusDraft, models.PostStatusPublished, role)
		if !IsInvalidTransition(err) {
			t.Fatalf("draft -> published (%s): ожидался InvalidTransitionError, получено %v", role, err)
		}
	}
}

func TestPostTable_SelfTransitionForbidden(t *testing.T) {
	statuses := []models.PostStatus{
		models.PostStatusDraft,
		models.PostStatusPendingReview,
		models.PostStatusPublished,
		models.PostStatusArchived,
	}
	for _, s := range statuses {
		if err := CheckPost(s, s, RoleAdmin); !IsInvalidTransition(err) {
			t.Fatalf("%s -> %s: ожидался InvalidTransitionError, получено %v", s, s, err)
		}
	}
}

func TestPostTable_ActorGate(t *testing.T) {
	// отправить на ревью может только автор
	err := CheckPost(models.PostStatusDraft, models.PostStatusPendingReview, RoleAdmin)
	if !IsUnauthorized(err) {
		t.Fatalf("draft -> pending_review от admin: ожидался UnauthorizedError, получено %v", err)
	}

	// публиковать может только админ
	err = CheckPost(models.PostStatusPendingReview, models.PostStatusPublished, RoleAuthor)
	if !IsUnauthorized(err) {
		t.Fatalf("pending_review -> published от author: ожидался UnauthorizedError, получено %v", err)
	}
}

func TestApplicationTable_AllowedEdges(t *testing.T) {
	steps := []struct {
		from models.ApplicationStatus
		to   models.ApplicationStatus
	}{
		{models.ApplicationStatusPending, models.ApplicationStatusUnderReview},
		{models.ApplicationStatusPending, models.ApplicationStatusApproved},
		{models.ApplicationStatusPending, models.ApplicationStatusRejected},
		{models.ApplicationStatusUnderReview, models.ApplicationStatusApproved},
		{models.ApplicationStatusUnderReview, models.ApplicationStatusRejected},
	}
	for _, s := range steps {
		if err := CheckApplication(s.from, s.to, RoleAdmin); err != nil {
			t.Fatalf("переход %s -> %s должен быть разрешён: %v", s.from, s.to, err)
		}
	}
}

func TestApplicationTable_TerminalStatuses(t *testing.T) {
	terminal := []models.ApplicationStatus{
		models.ApplicationStatusApproved,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWithdrawn,
	}
	targets := []models.ApplicationStatus{
		models.ApplicationStatusPending,
		models.ApplicationStatusUnderReview,
		models.ApplicationStatusApproved,
		models.ApplicationStatusRejected,
	}
	for _, from := range terminal {
		for _, to := range targets {
			if err := CheckApplication(from, to, RoleAdmin); !IsInvalidTransition(err) {
				t.Fatalf("%s -> %s: терминальный статус, ожидался InvalidTransitionError, получено %v", from, to, err)
			}
		}
	}
}

func TestApplicationTable_AdminOnly(t *testing.T) {
	err := CheckApplication(models.ApplicationStatusPending, models.ApplicationStatusApproved, RoleAuthor)
	if !IsUnauthorized(err) {
		t.Fatalf("ревью от не-админа: ожидался UnauthorizedError, получено %v", err)
	}
}

func TestValidInitialPostStatus(t *testing.T) {
	if !ValidInitialPostStatus(models.PostStatusDraft) || !ValidInitialPostStatus(models.PostStatusPendingReview) {
		t.Fatal("draft и pending_review — допустимые входные статусы")
	}
	if ValidInitialPostStatus(models.PostStatusPublished) || ValidInitialPostStatus(models.PostStatusArchived) {
		t.Fatal("пост нельзя создать сразу опубликованным или в архиве")
	}
}
