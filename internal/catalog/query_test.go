package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var queryFixture = []Book{
	{URL: "u1", Title: "The Go Programming Language", Author: "Donovan", Category: "Go", LanguageCode: "en"},
	{URL: "u2", Title: "Learning Python", Category: "Python", LanguageCode: "en"},
	{URL: "u3", Title: "Programando en Go", Author: "garcia", Category: "Go", LanguageCode: "es"},
	{URL: "u4", Title: "Eloquent JavaScript", Author: "Haverbeke", Category: "JavaScript", LanguageCode: "en"},
}

func TestSearch(t *testing.T) {
	t.Run("blank query is identity", func(t *testing.T) {
		got := Search(queryFixture, "")
		assert.Equal(t, queryFixture, got)

		got = Search(queryFixture, "   ")
		assert.Equal(t, queryFixture, got)
	})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		got := Search(queryFixture, "GO PROGRAMMING")
		require.Len(t, got, 1)
		assert.Equal(t, "u1", got[0].URL)
	})

	t.Run("matches author", func(t *testing.T) {
		got := Search(queryFixture, "Garcia")
		require.Len(t, got, 1)
		assert.Equal(t, "u3", got[0].URL)
	})

	t.Run("missing author only fails the author branch", func(t *testing.T) {
		got := Search(queryFixture, "python")
		require.Len(t, got, 1)
		assert.Equal(t, "u2", got[0].URL)
	})
}

func TestFilterByCategory(t *testing.T) {
	assert.Equal(t, queryFixture, FilterByCategory(queryFixture, ""))

	got := FilterByCategory(queryFixture, "go")
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].URL)
	assert.Equal(t, "u3", got[1].URL)
}

func TestFilterByLanguage(t *testing.T) {
	assert.Equal(t, queryFixture, FilterByLanguage(queryFixture, ""))

	got := FilterByLanguage(queryFixture, "es")
	require.Len(t, got, 1)
	assert.Equal(t, "u3", got[0].URL)

	assert.Empty(t, FilterByLanguage(queryFixture, "ES"), "language codes match case-sensitively")
}

func TestFilter(t *testing.T) {
	t.Run("no options returns input in order", func(t *testing.T) {
		got := Filter(queryFixture, Options{})
		assert.Equal(t, queryFixture, got)
	})

	t.Run("composes search then category then language", func(t *testing.T) {
		got := Filter(queryFixture, Options{Search: "go", Category: "Go", Language: "en"})
		require.Len(t, got, 1)
		assert.Equal(t, "u1", got[0].URL)
	})

	t.Run("filters can empty the list", func(t *testing.T) {
		got := Filter(queryFixture, Options{Search: "python", Category: "Go"})
		assert.Empty(t, got)
	})
}
