package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus — статус заявки на авторство.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// IsTerminal — из терминального статуса переходов нет.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}

// SamplePost — ссылка на опубликованный ранее материал заявителя.
// Записи с пустым url игнорируются целиком.
type SamplePost struct {
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// AdminReview — поля, которые пишет только движок ревью заявок.
type AdminReview struct {
	Remarks           string     `json:"remarks,omitempty"`
	AIEvaluationScore int        `json:"aiEvaluationScore"`
	ReviewDate        *time.Time `json:"reviewDate,omitempty"`
}

type Application struct {
	ID                uuid.UUID         `db:"id"                 json:"id"`
	ApplicantID       uuid.UUID         `db:"applicant_id"       json:"applicantId"`
	FullName          string            `db:"full_name"          json:"fullName"`
	ContactEmail      string            `db:"contact_email"      json:"contactEmail"`
	PhoneNumber       string            `db:"phone_number"       json:"phoneNumber,omitempty"`
	Bio               string            `db:"bio"                json:"bio"`
	WritingExperience string            `db:"writing_experience" json:"writingExperience"`
	Niches            []string          `db:"-"                  json:"niches"`
	SocialLinks       map[string]string `db:"-"                  json:"socialLinks,omitempty"`
	SamplePosts       []SamplePost      `db:"-"                  json:"samplePosts,omitempty"`
	Country           string            `db:"country"            json:"country"`
	PreferredLanguage string            `db:"preferred_language" json:"preferredLanguage,omitempty"`
	Status            ApplicationStatus `db:"status"             json:"status"`
	Admin             AdminReview       `db:"-"                  json:"admin"`
	CreatedAt         time.Time         `db:"created_at"         json:"createdAt"`
	UpdatedAt         time.Time         `db:"updated_at"         json:"updatedAt"`
}

// swagger:model SubmitApplicationRequest
type SubmitApplicationRequest struct {
	FullName          string            `json:"fullName"          example:"Jane Doe"`
	ContactEmail      string            `json:"contactEmail"      example:"jane@example.com"`
	PhoneNumber       string            `json:"phoneNumber"`
	Bio               string            `json:"bio"`
	WritingExperience string            `json:"writingExperience" example:"intermediate"`
	Niches            []string          `json:"niches"            example:"tech,travel"`
	SocialLinks       map[string]string `json:"socialLinks"`
	SamplePosts       []SamplePost      `json:"samplePosts"`
	Country           string            `json:"country"           example:"GH"`
	PreferredLanguage string            `json:"preferredLanguage" example:"en"`
}

// swagger:model ReviewApplicationRequest
type ReviewApplicationRequest struct {
	Status  ApplicationStatus `json:"status"  example:"approved"`
	Remarks string            `json:"remarks" example:"great fit"`
	// 0–10; если не задан — пишется 0.
	AIEvaluationScore *int `json:"aiEvaluationScore,omitempty"`
}
