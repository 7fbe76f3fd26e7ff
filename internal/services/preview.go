package services

import (
	"context"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/BossEl-566/LmBlog-sub001/internal/logger"
)

// PreviewService рендерит markdown-фолбэк поста в безопасный HTML для
// предпросмотра в админке.
type PreviewService interface {
	RenderPreview(md string) string
}

type previewService struct {
	policy *bluemonday.Policy
}

func NewPreviewService() PreviewService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &previewService{policy: p}
}

func (s *previewService) RenderPreview(md string) string {
	// безопасно логируем только длины
	log := logger.WithCtx(context.Background())

	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	raw := markdown.Render(doc, renderer)

	clean := s.policy.SanitizeBytes(raw)
	log.Debug("Предпросмотр markdown (render+sanitize)",
		zap.Int("md_len", len(md)),
		zap.Int("clean_len", len(clean)),
	)
	return string(clean)
}
