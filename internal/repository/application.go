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

type ApplicationRepo interface {
	Create(ctx context.Context, a *models.Application) (*models.Application, error)
	GetAll(ctx context.Context, limit, offset int, status models.ApplicationStatus) ([]*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	// UpdateStatusCAS атомарно переводит заявку из from в to и в том же
	// запросе пишет поля ревью (если заданы). Если статус уже не from —
	// ErrConflict без каких-либо изменений.
	UpdateStatusCAS(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus, review *models.AdminReview) (*models.Application, error)
}

type applicationRepo struct{ db *pgxpool.Pool }

func NewApplicationRepo(db *pgxpool.Pool) ApplicationRepo { return &applicationRepo{db: db} }

const applicationColumns = `id, applicant_id, full_name, contact_email, phone_number, bio, writing_experience, niches, social_links, sample_posts, country, preferred_language, status, admin_review, created_at, updated_at`

func (r *applicationRepo) Create(ctx context.Context, a *models.Application) (*models.Application, error) {
	nichesJSON, _ := json.Marshal(a.Niches)
	linksJSON, _ := json.Marshal(a.SocialLinks)
	samplesJSON, _ := json.Marshal(a.SamplePosts)
	adminJSON, _ := json.Marshal(a.Admin)

	q := fmt.Sprintf(`
		INSERT INTO applications (id, applicant_id, full_name, contact_email, phone_number, bio, writing_experience, niches, social_links, sample_posts, country, preferred_language, status, admin_review)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8::jsonb,$9::jsonb,$10::jsonb,$11,$12,$13,$14::jsonb)
		RETURNING %s
	`, applicationColumns)

	row := r.db.QueryRow(ctx, q,
		a.ID, a.ApplicantID, a.FullName, a.ContactEmail, a.PhoneNumber,
		a.Bio, a.WritingExperience, nichesJSON, linksJSON, samplesJSON,
		a.Country, a.PreferredLanguage, a.Status, adminJSON,
	)
	return scanApplication(row)
}

func (r *applicationRepo) GetAll(ctx context.Context, limit, offset int, status models.ApplicationStatus) ([]*models.Application, error) {
	qBase := fmt.Sprintf(`SELECT %s FROM applications`, applicationColumns)

	where := []string{}
	args := []interface{}{}
	i := 1

	if status != "" {
		where = append(where, fmt.Sprintf("status = $%d", i))
		args = append(args, status)
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

	var list []*models.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *applicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	q := fmt.Sprintf(`SELECT %s FROM applications WHERE id=$1`, applicationColumns)
	a, err := scanApplication(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *applicationRepo) UpdateStatusCAS(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus, review *models.AdminReview) (*models.Application, error) {
	var (
		q   string
		row pgx.Row
	)
	if review != nil {
		adminJSON, _ := json.Marshal(review)
		q = fmt.Sprintf(`
			UPDATE applications
			SET status=$3, admin_review=$4::jsonb, updated_at=NOW()
			WHERE id=$1 AND status=$2
			RETURNING %s
		`, applicationColumns)
		row = r.db.QueryRow(ctx, q, id, from, to, adminJSON)
	} else {
		q = fmt.Sprintf(`
			UPDATE applications
			SET status=$3, updated_at=NOW()
			WHERE id=$1 AND status=$2
			RETURNING %s
		`, applicationColumns)
		row = r.db.QueryRow(ctx, q, id, from, to)
	}

	a, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, gerr := r.GetByID(ctx, id); errors.Is(gerr, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrConflict
	}
	return a, err
}

func scanApplication(row rowScanner) (*models.Application, error) {
	var a models.Application
	var nichesRaw, linksRaw, samplesRaw, adminRaw []byte

	err := row.Scan(
		&a.ID, &a.ApplicantID, &a.FullName, &a.ContactEmail, &a.PhoneNumber,
		&a.Bio, &a.WritingExperience, &nichesRaw, &linksRaw, &samplesRaw,
		&a.Country, &a.PreferredLanguage, &a.Status, &adminRaw,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	_ = json.Unmarshal(nichesRaw, &a.Niches)
	_ = json.Unmarshal(linksRaw, &a.SocialLinks)
	_ = json.Unmarshal(samplesRaw, &a.SamplePosts)
	_ = json.Unmarshal(adminRaw, &a.Admin)
	return &a, nil
}
