package validation

import (
	"strings"
	"testing"

	"github.com/BossEl-566/LmBlog-sub001/internal/models"
)

func validApplication() *models.SubmitApplicationRequest {
	return &models.SubmitApplicationRequest{
		FullName:          "Jane Doe",
		ContactEmail:      "jane@example.com",
		Bio:               strings.Repeat("a", 50),
		WritingExperience: "intermediate",
		Niches:            []string{"tech"},
		Country:           "GH",
	}
}

func TestValidatePostSubmission(t *testing.T) {
	req := &models.SavePostRequest{Title: "Заголовок"}

	if err := ValidatePostSubmission(req, "текст тела"); err != nil {
		t.Fatalf("валидный пост отклонён: %v", err)
	}

	if err := ValidatePostSubmission(&models.SavePostRequest{}, "текст"); err == nil || err.Field != "title" {
		t.Fatalf("ожидалась ошибка по title, получено %v", err)
	}

	if err := ValidatePostSubmission(req, "   \n"); err == nil || err.Field != "content" {
		t.Fatalf("ожидалась ошибка по content, получено %v", err)
	}
}

func TestValidateApplication_RequiredFieldsInOrder(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*models.SubmitApplicationRequest)
		wantField string
	}{
		{"без имени", func(r *models.SubmitApplicationRequest) { r.FullName = " " }, "fullName"},
		{"плохой email", func(r *models.SubmitApplicationRequest) { r.ContactEmail = "not-an-email" }, "contactEmail"},
		{"без био", func(r *models.SubmitApplicationRequest) { r.Bio = "" }, "bio"},
		{"без опыта", func(r *models.SubmitApplicationRequest) { r.WritingExperience = "" }, "writingExperience"},
		{"без тем", func(r *models.SubmitApplicationRequest) { r.Niches = []string{" "} }, "niches"},
		{"без страны", func(r *models.SubmitApplicationRequest) { r.Country = "" }, "country"},
	}

	for _, c := range cases {
		req := validApplication()
		c.mutate(req)
		err := ValidateApplicationSubmission(req, BioPolicy{})
		if err == nil || err.Field != c.wantField {
			t.Fatalf("%s: ожидалась ошибка по %s, получено %v", c.name, c.wantField, err)
		}
	}
}

func TestValidateApplication_BioBoundary(t *testing.T) {
	req := validApplication()

	req.Bio = strings.Repeat("a", 49)
	if err := ValidateApplicationSubmission(req, BioPolicy{}); err == nil || err.Field != "bio" {
		t.Fatalf("био из 49 символов должно отклоняться, получено %v", err)
	}

	req.Bio = strings.Repeat("a", 50)
	if err := ValidateApplicationSubmission(req, BioPolicy{}); err != nil {
		t.Fatalf("био из 50 символов должно проходить: %v", err)
	}
}

func TestValidateApplication_BioUpperPolicy(t *testing.T) {
	req := validApplication()
	req.Bio = strings.Repeat("a", 501)

	// политика выключена — верхней границы нет
	if err := ValidateApplicationSubmission(req, BioPolicy{}); err != nil {
		t.Fatalf("без политики верхней границы нет: %v", err)
	}

	if err := ValidateApplicationSubmission(req, BioPolicy{Max: 500}); err == nil || err.Field != "bio" {
		t.Fatalf("с политикой 500 ожидалась ошибка по bio, получено %v", err)
	}

	req.Bio = strings.Repeat("a", 500)
	if err := ValidateApplicationSubmission(req, BioPolicy{Max: 500}); err != nil {
		t.Fatalf("ровно 500 символов должно проходить: %v", err)
	}
}

func TestValidateApplication_SamplePosts(t *testing.T) {
	req := validApplication()

	// запись с url, но без заголовка — ошибка
	req.SamplePosts = []models.SamplePost{{URL: "https://x", Title: "", Description: "y"}}
	err := ValidateApplicationSubmission(req, BioPolicy{})
	if err == nil || err.Field != "samplePosts[0].title" {
		t.Fatalf("ожидалась ошибка по samplePosts[0].title, получено %v", err)
	}

	// запись с url и заголовком, но без описания
	req.SamplePosts = []models.SamplePost{{URL: "https://x", Title: "t", Description: ""}}
	err = ValidateApplicationSubmission(req, BioPolicy{})
	if err == nil || err.Field != "samplePosts[0].description" {
		t.Fatalf("ожидалась ошибка по samplePosts[0].description, получено %v", err)
	}

	// полностью пустая запись игнорируется
	req.SamplePosts = []models.SamplePost{{URL: "", Title: "", Description: ""}}
	if err := ValidateApplicationSubmission(req, BioPolicy{}); err != nil {
		t.Fatalf("запись с пустым url должна игнорироваться: %v", err)
	}

	// валидная запись
	req.SamplePosts = []models.SamplePost{{URL: "https://x", Title: "t", Description: "d"}}
	if err := ValidateApplicationSubmission(req, BioPolicy{}); err != nil {
		t.Fatalf("валидная запись отклонена: %v", err)
	}
}
