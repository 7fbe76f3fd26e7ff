package workflow

import "github.com/BossEl-566/LmBlog-sub001/internal/models"

// PostTable — жизненный цикл поста. Прямого ребра draft -> published нет:
// публикация возможна только через pending_review.
var PostTable = &Table{
	Entity: "post",
	Edges: map[Edge][]Role{
		{From: string(models.PostStatusDraft), To: string(models.PostStatusPendingReview)}:     {RoleAuthor},
		{From: string(models.PostStatusPendingReview), To: string(models.PostStatusDraft)}:     {RoleAdmin},
		{From: string(models.PostStatusPendingReview), To: string(models.PostStatusPublished)}: {RoleAdmin},
		{From: string(models.PostStatusPublished), To: string(models.PostStatusArchived)}:      {RoleAdmin},
		{From: string(models.PostStatusArchived), To: string(models.PostStatusPublished)}:      {RoleAdmin},
	},
}

// ApplicationTable — жизненный цикл заявки. approved, rejected и withdrawn
// терминальны: исходящих рёбер у них нет. Статус withdrawn выставляет
// внешний сценарий заявителя, внутри сервиса до него рёбер нет.
var ApplicationTable = &Table{
	Entity: "application",
	Edges: map[Edge][]Role{
		{From: string(models.ApplicationStatusPending), To: string(models.ApplicationStatusUnderReview)}: {RoleAdmin},
		{From: string(models.ApplicationStatusPending), To: string(models.ApplicationStatusApproved)}:    {RoleAdmin},
		{From: string(models.ApplicationStatusPending), To: string(models.ApplicationStatusRejected)}:    {RoleAdmin},
		{From: string(models.ApplicationStatusUnderReview), To: string(models.ApplicationStatusApproved)}: {RoleAdmin},
		{From: string(models.ApplicationStatusUnderReview), To: string(models.ApplicationStatusRejected)}: {RoleAdmin},
	},
}

// CheckPost — типизированная обёртка над общей таблицей.
func CheckPost(from, to models.PostStatus, role Role) error {
	return PostTable.Check(string(from), string(to), role)
}

// CheckApplication — типизированная обёртка над общей таблицей.
func CheckApplication(from, to models.ApplicationStatus, role Role) error {
	return ApplicationTable.Check(string(from), string(to), role)
}

// ValidInitialPostStatus: пост создаётся сразу в draft (сохранение
// черновика) или в pending_review (отправка на ревью) — это входные
// статусы, а не результат перехода. Терминальный статус при создании
// недопустим.
func ValidInitialPostStatus(s models.PostStatus) bool {
	return s == models.PostStatusDraft || s == models.PostStatusPendingReview
}
