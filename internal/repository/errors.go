package repository

import "errors"

var (
	// ErrNotFound — сущности с таким id нет.
	ErrNotFound = errors.New("не найдено")

	// ErrConflict — compare-and-swap не прошёл: статус успел измениться
	// параллельным запросом. Переход не применён даже частично.
	ErrConflict = errors.New("статус изменён параллельно")
)
