// Package workflow содержит конечные автоматы статусов поста и заявки:
// одну общую проверку «ребро существует и роль допущена» и явные таблицы
// переходов по сущностям. Применение перехода атомарно делает слой
// персистентности (compare-and-swap по текущему статусу).
package workflow

import (
	"errors"
	"fmt"
)

// Role — роль инициатора перехода.
type Role string

const (
	RoleAuthor Role = "author"
	RoleAdmin  Role = "admin"
)

// Edge — одно ребро автомата статусов.
type Edge struct {
	From string
	To   string
}

// Table — таблица переходов сущности: ребро -> роли, которым оно доступно.
// Таблица — явные данные, чтобы её можно было читать как спецификацию.
type Table struct {
	Entity string
	Edges  map[Edge][]Role
}

// Check проверяет запрошенный переход. Возвращает nil, если ребро
// определено и роль допущена; *InvalidTransitionError, если такого ребра
// нет (в том числе для терминальных статусов и переходов в себя);
// *UnauthorizedError, если ребро есть, но роль не та.
func (t *Table) Check(from, to string, role Role) error {
	roles, ok := t.Edges[Edge{From: from, To: to}]
	if !ok {
		return &InvalidTransitionError{Entity: t.Entity, From: from, To: to}
	}
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return &UnauthorizedError{Entity: t.Entity, Role: role, From: from, To: to}
}

// InvalidTransitionError — перехода нет в таблице. Не временная ошибка:
// повторять запрос бессмысленно.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: переход %s -> %s не определён", e.Entity, e.From, e.To)
}

// UnauthorizedError — переход существует, но роль инициатора не допущена.
type UnauthorizedError struct {
	Entity string
	Role   Role
	From   string
	To     string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: роль %s не может выполнить переход %s -> %s", e.Entity, e.Role, e.From, e.To)
}

func IsInvalidTransition(err error) bool {
	var it *InvalidTransitionError
	return errors.As(err, &it)
}

func IsUnauthorized(err error) bool {
	var ua *UnauthorizedError
	return errors.As(err, &ua)
}
