package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей. Токены выдаёт внешний сервис сессий,
// здесь роли нужны только для гейтов переходов и маршрутов.
const (
	RoleReader = "reader"
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

// User — минимальная проекция аккаунта: ядру нужна только роль,
// остальным управляет внешний сервис пользователей.
type User struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Role      string    `db:"role"       json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
