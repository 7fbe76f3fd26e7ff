package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BossEl-566/LmBlog-sub001/internal/models"
)

type PostRepo interface {
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	GetAll(ctx context.Context, limit, offset int, status models.PostStatus, tag string) ([]*models.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	// UpdateStatusCAS атомарно переводит пост из from в to. Если статус
	// уже не from — возвращает ErrConflict, ничего не меняя.
	UpdateStatusCAS(ctx context.Context, id uuid.UUID, from, to models.PostStatus) (*models.Post, error)
}

type postRepo struct{ db *pgxpool.Pool }

func NewPostRepo(db *pgxpool.Pool) PostRepo { return &postRepo{db: db} }

const postColumns = `id, author_id, title, excerpt, status, category, cover_image, content_blocks, content_markdown, reading_time_minutes, view_count, like_count, created_at, updated_at, tags`

func (r *postRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	tagsJSON, _ := json.Marshal(p.Tags)
	blocksJSON, _ := json.Marshal(p.ContentBlocks)
	coverJSON, _ := json.Marshal(p.CoverImage)

	q := fmt.Sprintf(`
		INSERT INTO posts (id, author_id, title, excerpt, status, category, cover_image, content_blocks, content_markdown, reading_time_minutes, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7::jsonb,$8::jsonb,$9,$10,$11::jsonb)
		RETURNING %s
	`, postColumns)

	row := r.db.QueryRow(ctx, q,
		p.ID,
		p.AuthorID,
		p.Title,
		p.Excerpt,
		p.Status,
		p.Category,
		coverJSON,
		blocksJSON,
		p.ContentMarkdown,
		p.ReadingTimeMinutes,
		tagsJSON,
	)
	return scanPost(row)
}

func (r *postRepo) GetAll(ctx context.Context, limit, offset int, status models.PostStatus, tag string) ([]*models.Post, error) {
	qBase := fmt.Sprintf(`SELECT %s FROM posts`, postColumns)

	where := []string{}
	args := []interface{}{}
	i := 1

	if status != "" {
		where = append(where, fmt.Sprintf("status = $%d", i))
		args = append(args, status)
		i++
	}
	if tag != "" {
		// tags — jsonb-массив строк: ["a","b"]
		where = append(where, fmt.Sprintf(`
			EXISTS (
				SELECT 1
				FROM jsonb_array_elements_text(tags) AS t(val)
				WHERE t.val = $%d
			)
		`, i))
		args = append(args, tag)
		i++
	}

	sql := qBase
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *postRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	q := fmt.Sprintf(`SELECT %s FROM posts WHERE id=$1`, postColumns)
	p, err := scanPost(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *postRepo) Update(ctx context.Context, p *models.Post) error {
	tagsJSON, _ := json.Marshal(p.Tags)
	blocksJSON, _ := json.Marshal(p.ContentBlocks)
	coverJSON, _ := json.Marshal(p.CoverImage)

	const q = `
		UPDATE posts
		SET title=$1,
		    excerpt=$2,
		    category=$3,
		    cover_image=$4::jsonb,
		    content_blocks=$5::jsonb,
		    content_markdown=$6,
		    reading_time_minutes=$7,
		    tags=$8::jsonb,
		    updated_at=NOW()
		WHERE id=$9
	`
	ct, err := r.db.Exec(ctx, q,
		p.Title, p.Excerpt, p.Category, coverJSON, blocksJSON,
		p.ContentMarkdown, p.ReadingTimeMinutes, tagsJSON, p.ID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id=$1", id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, "UPDATE posts SET view_count = view_count + 1 WHERE id=$1", id)
	return err
}

func (r *postRepo) UpdateStatusCAS(ctx context.Context, id uuid.UUID, from, to models.PostStatus) (*models.Post, error) {
	q := fmt.Sprintf(`
		UPDATE posts
		SET status=$3, updated_at=NOW()
		WHERE id=$1 AND status=$2
		RETURNING %s
	`, postColumns)

	p, err := scanPost(r.db.QueryRow(ctx, q, id, from, to))
	if errors.Is(err, pgx.ErrNoRows) {
		// строки нет или статус уже другой — переход не применён
		if _, gerr := r.GetByID(ctx, id); errors.Is(gerr, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrConflict
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var p models.Post
	var coverRaw, blocksRaw, tagsRaw []byte

	err := row.Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Excerpt, &p.Status, &p.Category,
		&coverRaw, &blocksRaw, &p.ContentMarkdown, &p.ReadingTimeMinutes,
		&p.ViewCount, &p.LikeCount, &p.CreatedAt, &p.UpdatedAt, &tagsRaw,
	)
	if err != nil {
		return nil, err
	}
	_ = json.Unmarshal(tagsRaw, &p.Tags)
	_ = json.Unmarshal(blocksRaw, &p.ContentBlocks)
	if len(coverRaw) > 0 && string(coverRaw) != "null" {
		_ = json.Unmarshal(coverRaw, &p.CoverImage)
	}
	return &p, nil
}
