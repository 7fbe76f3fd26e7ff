package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus — статус жизненного цикла поста.
type PostStatus string

const (
	PostStatusDraft         PostStatus = "draft"
	PostStatusPendingReview PostStatus = "pending_review"
	PostStatusPublished     PostStatus = "published"
	PostStatusArchived      PostStatus = "archived"
)

func (s PostStatus) IsPublished() bool { return s == PostStatusPublished }

// CoverImage — обложка поста; URL выдаёт хранилище файлов.
type CoverImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

type Post struct {
	ID                 uuid.UUID      `db:"id"                   json:"id"`
	AuthorID           uuid.UUID      `db:"author_id"            json:"authorId"`
	Title              string         `db:"title"                json:"title"`
	Excerpt            string         `db:"excerpt"              json:"excerpt,omitempty"`
	Status             PostStatus     `db:"status"               json:"status"`
	Tags               []string       `db:"-"                    json:"tags"`
	Category           string         `db:"category"             json:"category,omitempty"`
	CoverImage         *CoverImage    `db:"-"                    json:"coverImage,omitempty"`
	ContentBlocks      []ContentBlock `db:"-"                    json:"contentBlocks"`
	ContentMarkdown    string         `db:"content_markdown"     json:"contentMarkdown"`
	ReadingTimeMinutes int            `db:"reading_time_minutes" json:"readingTimeMinutes"`
	ViewCount          int            `db:"view_count"           json:"viewCount"`
	LikeCount          int            `db:"like_count"           json:"likeCount"`
	CreatedAt          time.Time      `db:"created_at"           json:"createdAt"`
	UpdatedAt          time.Time      `db:"updated_at"           json:"updatedAt"`
}

// swagger:model SavePostRequest
type SavePostRequest struct {
	Title      string         `json:"title"      example:"Мой первый пост"`
	Excerpt    string         `json:"excerpt"    example:"Короткое описание для превью"`
	Tags       []string       `json:"tags"       example:"go,backend"`
	Category   string         `json:"category"   example:"tech"`
	CoverImage *CoverImage    `json:"coverImage,omitempty"`
	Document   []DocumentNode `json:"document"`
	// Параллельный markdown-фолбэк; если пуст — собирается из дерева.
	ContentMarkdown string `json:"contentMarkdown"`
	// true — сразу отправить на ревью (начальный статус pending_review),
	// false — сохранить черновиком.
	Submit bool `json:"submit"`
}

// swagger:model ChangePostStatusRequest
type ChangePostStatusRequest struct {
	Status PostStatus `json:"status" example:"published"`
}
