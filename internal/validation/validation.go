// Package validation проверяет данные поста и заявки перед созданием или
// отправкой. Правила выполняются по порядку, возвращается первое
// нарушение. Пакет ничего не сохраняет и не пишет в лог.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/BossEl-566/LmBlog-sub001/internal/models"
)

// Нижняя граница длины био проверяется всегда; верхняя — политика
// (BioPolicy.Max, 0 = выключена), потому что исходно она была только
// подсказкой в интерфейсе.
const bioMinRunes = 50

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError — первое нарушенное правило и поле, к которому оно
// относится. Сущность при этом не сохраняется.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// BioPolicy — настраиваемая политика длины био заявителя.
type BioPolicy struct {
	Max int
}

// ValidatePostSubmission проверяет пост перед сохранением или отправкой
// на ревью. plainText — собранный текст тела (markdown-фолбэк или
// плоский текст дерева).
func ValidatePostSubmission(req *models.SavePostRequest, plainText string) *ValidationError {
	if strings.TrimSpace(req.Title) == "" {
		return &ValidationError{Field: "title", Reason: "заголовок обязателен"}
	}
	if strings.TrimSpace(plainText) == "" {
		return &ValidationError{Field: "content", Reason: "тело поста пустое"}
	}
	return nil
}

// ValidateApplicationSubmission проверяет заявку на авторство.
func ValidateApplicationSubmission(req *models.SubmitApplicationRequest, policy BioPolicy) *ValidationError {
	// 1. Обязательные поля
	if strings.TrimSpace(req.FullName) == "" {
		return &ValidationError{Field: "fullName", Reason: "имя обязательно"}
	}
	if !emailRegex.MatchString(strings.TrimSpace(req.ContactEmail)) {
		return &ValidationError{Field: "contactEmail", Reason: "нужен корректный email"}
	}
	if strings.TrimSpace(req.Bio) == "" {
		return &ValidationError{Field: "bio", Reason: "био обязательно"}
	}
	if strings.TrimSpace(req.WritingExperience) == "" {
		return &ValidationError{Field: "writingExperience", Reason: "опыт обязателен"}
	}
	if countNonEmpty(req.Niches) == 0 {
		return &ValidationError{Field: "niches", Reason: "нужна хотя бы одна тема"}
	}
	if strings.TrimSpace(req.Country) == "" {
		return &ValidationError{Field: "country", Reason: "страна обязательна"}
	}

	// 2. Длина био
	bioLen := utf8.RuneCountInString(strings.TrimSpace(req.Bio))
	if bioLen < bioMinRunes {
		return &ValidationError{
			Field:  "bio",
			Reason: fmt.Sprintf("минимум %d символов, сейчас %d", bioMinRunes, bioLen),
		}
	}
	if policy.Max > 0 && bioLen > policy.Max {
		return &ValidationError{
			Field:  "bio",
			Reason: fmt.Sprintf("максимум %d символов, сейчас %d", policy.Max, bioLen),
		}
	}

	// 3. Примеры публикаций: запись с пустым url игнорируется целиком,
	// у записи с url должны быть и заголовок, и описание.
	for i, sp := range req.SamplePosts {
		if strings.TrimSpace(sp.URL) == "" {
			continue
		}
		if strings.TrimSpace(sp.Title) == "" {
			return &ValidationError{
				Field:  fmt.Sprintf("samplePosts[%d].title", i),
				Reason: "для ссылки нужен заголовок",
			}
		}
		if strings.TrimSpace(sp.Description) == "" {
			return &ValidationError{
				Field:  fmt.Sprintf("samplePosts[%d].description", i),
				Reason: "для ссылки нужно описание",
			}
		}
	}

	return nil
}

func countNonEmpty(in []string) int {
	n := 0
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
