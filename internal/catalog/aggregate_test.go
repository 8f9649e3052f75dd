package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	books := []Book{
		{URL: "1", Category: "C++"},
		{URL: "2", Category: "Go"},
		{URL: "3", Category: "Go"},
		{URL: "4", Category: "Python"},
		{URL: "5", Category: "Go"},
	}

	got := Categories(books)

	require.Len(t, got, 3)
	assert.Equal(t, CategoryCount{Name: "Go", Slug: "go", Count: 3}, got[0])
	assert.Equal(t, CategoryCount{Name: "C++", Slug: "c-plus-plus", Count: 1}, got[1])
	assert.Equal(t, CategoryCount{Name: "Python", Slug: "python", Count: 1}, got[2])
}

func TestCategoriesTiesKeepFirstSeenOrder(t *testing.T) {
	books := []Book{
		{URL: "1", Category: "Zig"},
		{URL: "2", Category: "Ada"},
		{URL: "3", Category: "Zig"},
		{URL: "4", Category: "Ada"},
		{URL: "5", Category: "Lua"},
		{URL: "6", Category: "Lua"},
	}

	got := Categories(books)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Zig", "Ada", "Lua"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestLanguages(t *testing.T) {
	books := []Book{
		{URL: "1", LanguageCode: "en", LanguageName: "English"},
		{URL: "2", LanguageCode: "ko", LanguageName: "한국어"},
		{URL: "3", LanguageCode: "en", LanguageName: "English (US)"},
		{URL: "4", LanguageCode: "en", LanguageName: "English"},
	}

	got := Languages(books)

	require.Len(t, got, 2)
	assert.Equal(t, LanguageCount{Code: "en", Name: "English", Count: 3}, got[0], "first-seen name wins")
	assert.Equal(t, LanguageCount{Code: "ko", Name: "한국어", Count: 1}, got[1])
}

func TestAggregatesOnEmptyInput(t *testing.T) {
	assert.Empty(t, Categories(nil))
	assert.Empty(t, Languages(nil))
}
