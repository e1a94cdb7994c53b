// Package articles собирает данные страниц со статьями и категориями из внешнего API.
package articles

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/blog-portal/internal/discovery"
	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// ArticleGateway описывает обращения к коллекциям статей и категорий.
type ArticleGateway interface {
	ListArticles(ctx context.Context) ([]models.Article, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	ListArticlesByCategory(ctx context.Context, category string) ([]models.Article, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Service отдаёт данные страниц статей.
type Service struct {
	articles     ArticleGateway
	relatedLimit int
}

// NewService создает новый экземпляр Service.
// relatedLimit ограничивает число похожих статей на странице статьи.
func NewService(articles ArticleGateway, relatedLimit int) *Service {
	return &Service{
		articles:     articles,
		relatedLimit: relatedLimit,
	}
}

// All полная коллекция статей, источник для discovery.Engine.
func (s *Service) All(ctx context.Context) ([]models.Article, error) {
	const op = "services.articles.All"

	all, err := s.articles.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return all, nil
}

// Detail статья, её абзацы и похожие статьи.
// Похожие берутся из первой категории статьи, а если её нет, из всей коллекции.
func (s *Service) Detail(ctx context.Context, id string) (*models.ArticleDetail, error) {
	const op = "services.articles.Detail"

	article, err := s.articles.GetArticle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	primary := article.PrimaryCategory()
	var candidates []models.Article
	if primary != "" {
		candidates, err = s.articles.ListArticlesByCategory(ctx, primary)
	} else {
		candidates, err = s.articles.ListArticles(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: related: %w", op, err)
	}

	related := make([]models.Article, 0, s.relatedLimit)
	for _, c := range candidates {
		if len(related) >= s.relatedLimit {
			break
		}
		if c.ID == article.ID {
			continue
		}
		related = append(related, c)
	}

	title := "More articles"
	if primary != "" {
		title = "More in " + primary
	}

	return &models.ArticleDetail{
		Article:      *article,
		Paragraphs:   article.Paragraphs(),
		Related:      related,
		RelatedTitle: title,
	}, nil
}

// Categories список категорий, имя которых содержит search без учёта регистра.
func (s *Service) Categories(ctx context.Context, search string) ([]models.Category, error) {
	const op = "services.articles.Categories"

	all, err := s.articles.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q := strings.ToLower(search)
	out := make([]models.Category, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// AdminArticles строки таблицы статей админки с теми же правилами фильтрации,
// что и у списка статей пользователя. Total считает всю коллекцию.
func (s *Service) AdminArticles(ctx context.Context, category, search string) (*models.AdminArticles, error) {
	const op = "services.articles.AdminArticles"

	all, err := s.articles.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filtered := discovery.Filter(all, search, category)
	rows := make([]models.AdminArticleRow, 0, len(filtered))
	for _, a := range filtered {
		rows = append(rows, models.AdminArticleRow{
			ID:        a.ID,
			Thumbnail: a.ImageURL,
			Title:     a.Title,
			Category:  a.Category,
			CreatedAt: a.CreatedAt,
		})
	}

	return &models.AdminArticles{
		Total:      len(all),
		Categories: discovery.Categories(all),
		Rows:       rows,
	}, nil
}
