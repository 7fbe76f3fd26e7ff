package models

// Типы узлов, которые присылает визуальный редактор.
const (
	NodeParagraph   = "paragraph"
	NodeHeading     = "heading"
	NodeBulletList  = "bulletList"
	NodeOrderedList = "orderedList"
	NodeListItem    = "listItem"
	NodeBlockquote  = "blockquote"
	NodeCodeBlock   = "codeBlock"
	NodeImage       = "image"
	NodeText        = "text"
)

// NodeAttrs — атрибуты узла редактора. Заполняются по типу узла,
// остальные поля остаются нулевыми.
type NodeAttrs struct {
	Level     int    `json:"level,omitempty"`
	TextAlign string `json:"textAlign,omitempty"`
	Language  string `json:"language,omitempty"`
	Src       string `json:"src,omitempty"`
	Alt       string `json:"alt,omitempty"`
	Title     string `json:"title,omitempty"`
}

// DocumentNode — узел дерева документа из редактора. Дерево конечное и
// без циклов; ядро его только читает.
type DocumentNode struct {
	Type    string         `json:"type"`
	Text    string         `json:"text,omitempty"`
	Attrs   *NodeAttrs     `json:"attrs,omitempty"`
	Content []DocumentNode `json:"content,omitempty"`
}

// Типы сохраняемых блоков контента.
const (
	BlockParagraph   = "paragraph"
	BlockHeading     = "heading"
	BlockBulletList  = "bulletList"
	BlockOrderedList = "orderedList"
	BlockQuote       = "quote"
	BlockCode        = "code"
	BlockImage       = "image"
)

// ContentBlock — один нормализованный блок тела поста. После конвертации
// блоки не изменяются; порядок повторяет порядок узлов дерева.
type ContentBlock struct {
	Type     string   `json:"type"`
	Text     string   `json:"text,omitempty"`
	Align    string   `json:"align,omitempty"`
	Level    int      `json:"level,omitempty"`
	Items    []string `json:"items,omitempty"`
	Code     string   `json:"code,omitempty"`
	Language string   `json:"language,omitempty"`
	URL      string   `json:"url,omitempty"`
	AltText  string   `json:"altText,omitempty"`
	Caption  string   `json:"caption,omitempty"`
}
