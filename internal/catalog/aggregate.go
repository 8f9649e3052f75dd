package catalog

import (
	"sort"

	"github.com/crayonzgrim/free-coders-books/internal/slug"
)

// Categories rolls up books by category name with a slug and a count, most
// populous first. Ties keep first-seen order.
func Categories(books []Book) []CategoryCount {
	counts := make(map[string]int, 64)
	var order []string
	for _, b := range books {
		if _, seen := counts[b.Category]; !seen {
			order = append(order, b.Category)
		}
		counts[b.Category]++
	}

	out := make([]CategoryCount, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryCount{
			Name:  name,
			Slug:  slug.Make(name),
			Count: counts[name],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Languages rolls up books by language code, carrying the first-seen
// language name for each code. Sorted like Categories.
func Languages(books []Book) []LanguageCount {
	counts := make(map[string]int, 32)
	names := make(map[string]string, 32)
	var order []string
	for _, b := range books {
		if _, seen := counts[b.LanguageCode]; !seen {
			order = append(order, b.LanguageCode)
			names[b.LanguageCode] = b.LanguageName
		}
		counts[b.LanguageCode]++
	}

	out := make([]LanguageCount, 0, len(order))
	for _, code := range order {
		out = append(out, LanguageCount{
			Code:  code,
			Name:  names[code],
			Count: counts[code],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
