// Package discovery реализует поиск, фильтрацию и пагинацию статей
// поверх полной коллекции, загруженной один раз при открытии страницы.
package discovery

import (
	"strings"

	"github.com/magabrotheeeer/blog-portal/internal/models"
)

// AllCategories значение селектора категорий, означающее "без ограничения".
const AllCategories = "all"

// Filter возвращает статьи, в заголовке которых есть search (без учёта регистра)
// и у которых поле category совпадает с category, если он задан.
// Порядок статей сохраняется, исходный срез не изменяется.
func Filter(all []models.Article, search, category string) []models.Article {
	query := strings.ToLower(search)
	category = normalizeCategory(category)

	filtered := make([]models.Article, 0, len(all))
	for _, a := range all {
		if !strings.Contains(strings.ToLower(a.Title), query) {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// Paginate возвращает items[(page-1)*size : page*size] с обрезкой по границам.
func Paginate(items []models.Article, page, size int) []models.Article {
	if page < 1 || size < 1 {
		return []models.Article{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []models.Article{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// TotalPages ceil(n/size). Для пустой выборки страниц 0.
func TotalPages(n, size int) int {
	if n <= 0 || size < 1 {
		return 0
	}
	return (n + size - 1) / size
}

// Categories уникальные непустые значения category в порядке первого появления.
func Categories(all []models.Article) []string {
	seen := make(map[string]struct{}, len(all))
	categories := make([]string, 0)
	for _, a := range all {
		if a.Category == "" {
			continue
		}
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		categories = append(categories, a.Category)
	}
	return categories
}

func normalizeCategory(c string) string {
	c = strings.TrimSpace(c)
	if c == AllCategories {
		return ""
	}
	return c
}
