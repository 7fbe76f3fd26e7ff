// Package editor преобразует дерево документа визуального редактора в
// плоскую последовательность блоков контента. Все функции чистые:
// без ошибок, без побочных эффектов, безопасны для конкурентных вызовов.
package editor

import (
	"strings"

	"github.com/BossEl-566/LmBlog-sub001/internal/models"
)

// ConvertDocument конвертирует узлы верхнего уровня в блоки, сохраняя их
// порядок. Из параграфа, заголовка и цитаты берётся только первый
// текстовый прогон — это осознанная потеря точности, полный текст
// остаётся в markdown-фолбэке. Список даёт по одному блоку на каждый
// пункт (группировка списка в выходе не восстановима). Незнакомые узлы
// молча пропускаются.
func ConvertDocument(nodes []models.DocumentNode) []models.ContentBlock {
	blocks := make([]models.ContentBlock, 0, len(nodes))

	for _, n := range nodes {
		switch n.Type {
		case models.NodeParagraph:
			blocks = append(blocks, models.ContentBlock{
				Type:  models.BlockParagraph,
				Text:  firstTextRun(n.Content),
				Align: textAlign(n.Attrs),
			})

		case models.NodeHeading:
			level := 1
			if n.Attrs != nil && n.Attrs.Level > 0 {
				level = n.Attrs.Level
			}
			blocks = append(blocks, models.ContentBlock{
				Type:  models.BlockHeading,
				Level: level,
				Text:  firstTextRun(n.Content),
				Align: textAlign(n.Attrs),
			})

		case models.NodeBlockquote:
			blocks = append(blocks, models.ContentBlock{
				Type:  models.BlockQuote,
				Text:  firstTextRun(n.Content),
				Align: textAlign(n.Attrs),
			})

		case models.NodeCodeBlock:
			language := "plaintext"
			if n.Attrs != nil && n.Attrs.Language != "" {
				language = n.Attrs.Language
			}
			blocks = append(blocks, models.ContentBlock{
				Type:     models.BlockCode,
				Code:     firstTextRun(n.Content),
				Language: language,
			})

		case models.NodeBulletList:
			blocks = append(blocks, expandList(n, models.BlockBulletList)...)

		case models.NodeOrderedList:
			blocks = append(blocks, expandList(n, models.BlockOrderedList)...)

		case models.NodeImage:
			var src, alt, title string
			if n.Attrs != nil {
				src, alt, title = n.Attrs.Src, n.Attrs.Alt, n.Attrs.Title
			}
			blocks = append(blocks, models.ContentBlock{
				Type:    models.BlockImage,
				URL:     src,
				AltText: alt,
				Caption: title,
			})

		default:
			// неизвестный узел — пропускаем без ошибки
		}
	}

	return blocks
}

// expandList разворачивает список в отдельный блок на каждый пункт:
// Items каждого блока содержит ровно одну строку.
func expandList(list models.DocumentNode, blockType string) []models.ContentBlock {
	blocks := make([]models.ContentBlock, 0, len(list.Content))
	for _, item := range list.Content {
		if item.Type != models.NodeListItem {
			continue
		}
		blocks = append(blocks, models.ContentBlock{
			Type:  blockType,
			Items: []string{firstTextRun(item.Content)},
		})
	}
	return blocks
}

// firstTextRun возвращает текст первого текстового прогона в глубину.
func firstTextRun(nodes []models.DocumentNode) string {
	for _, n := range nodes {
		if n.Type == models.NodeText {
			return n.Text
		}
		if t := firstTextRun(n.Content); t != "" {
			return t
		}
	}
	return ""
}

// PlainText собирает весь текст дерева: прогоны одного узла верхнего
// уровня склеиваются пробелом, узлы — переводом строки. Используется
// для markdown-фолбэка по умолчанию и подсчёта слов.
func PlainText(nodes []models.DocumentNode) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		runs := collectRuns(n, nil)
		if len(runs) == 0 {
			continue
		}
		parts = append(parts, strings.Join(runs, " "))
	}
	return strings.Join(parts, "\n")
}

func collectRuns(n models.DocumentNode, acc []string) []string {
	if n.Type == models.NodeText && n.Text != "" {
		return append(acc, n.Text)
	}
	for _, c := range n.Content {
		acc = collectRuns(c, acc)
	}
	return acc
}

func textAlign(attrs *models.NodeAttrs) string {
	if attrs == nil {
		return ""
	}
	return attrs.TextAlign
}
