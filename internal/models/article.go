package models

import (
	"strings"
	"time"
)

// Article статья блога.
//
// Внешний API отдаёт и одиночное поле category, и список categories.
// Список статей фильтруется по Category, страница статьи показывает Categories
// и подбирает похожие статьи по первой из них.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Categories  []string  `json:"categories"`
}

// Paragraphs делит содержимое статьи на абзацы по переводу строки, пустые строки отбрасываются.
func (a Article) Paragraphs() []string {
	lines := strings.Split(a.Content, "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		paragraphs = append(paragraphs, line)
	}
	return paragraphs
}

// PrimaryCategory первая категория из списка или пустая строка.
func (a Article) PrimaryCategory() string {
	if len(a.Categories) == 0 {
		return ""
	}
	return a.Categories[0]
}

// ArticleDetail данные страницы статьи.
type ArticleDetail struct {
	Article      Article   `json:"article"`
	Paragraphs   []string  `json:"paragraphs"`
	Related      []Article `json:"related"`
	RelatedTitle string    `json:"related_title"`
}

// AdminArticleRow строка таблицы статей в админке.
type AdminArticleRow struct {
	ID        string    `json:"id"`
	Thumbnail string    `json:"thumbnail"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminArticles данные страницы статей в админке.
type AdminArticles struct {
	Total      int               `json:"total"`
	Categories []string          `json:"categories"`
	Rows       []AdminArticleRow `json:"rows"`
}
