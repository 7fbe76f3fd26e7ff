package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BossEl-566/LmBlog-sub001/internal/models"
)

// UserRepo — узкая проекция внешнего сервиса пользователей: чтение роли
// и выдача права автора после одобрения заявки.
type UserRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GrantAuthorRole(ctx context.Context, id uuid.UUID) error
}

type userRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) UserRepo { return &userRepo{db: db} }

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const q = `SELECT id, role, created_at, updated_at FROM users WHERE id=$1`
	var u models.User
	err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GrantAuthorRole(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE users SET role=$2, updated_at=NOW() WHERE id=$1`
	ct, err := r.db.Exec(ctx, q, id, models.RoleAuthor)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
