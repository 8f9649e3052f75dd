package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenSectionDirectEntries(t *testing.T) {
	sec := Section{
		Section: "Go",
		Entries: []Entry{
			{URL: "https://example.test/go1", Title: "Go Book One"},
			{URL: "https://example.test/go2", Title: "Go Book Two", Author: "A. Gopher"},
		},
	}

	books := flattenSection(sec, "en", "English", "")

	require.Len(t, books, 2)
	for _, b := range books {
		assert.Equal(t, "Go", b.Category)
		assert.Empty(t, b.Subcategory, "top-level entries carry no subcategory")
		assert.Equal(t, "en", b.LanguageCode)
		assert.Equal(t, "English", b.LanguageName)
	}
	assert.Equal(t, "A. Gopher", books[1].Author)
}

func TestFlattenSectionSubsectionsOnly(t *testing.T) {
	sec := Section{
		Section: "JavaScript",
		Subsections: []Section{
			{Section: "React", Entries: []Entry{{URL: "u1", Title: "React Book"}}},
			{Section: "Vue", Entries: []Entry{{URL: "u2", Title: "Vue Book"}}},
		},
	}

	books := flattenSection(sec, "en", "English", "")

	require.Len(t, books, 2, "a section with no direct entries still yields its descendants")
	assert.Equal(t, "JavaScript", books[0].Category)
	assert.Equal(t, "React", books[0].Subcategory)
	assert.Equal(t, "JavaScript", books[1].Category)
	assert.Equal(t, "Vue", books[1].Subcategory)
}

func TestFlattenSectionDeepNestingKeepsTopCategory(t *testing.T) {
	sec := Section{
		Section: "JavaScript",
		Subsections: []Section{{
			Section: "React",
			Subsections: []Section{{
				Section: "Hooks",
				Entries: []Entry{{URL: "u1", Title: "Hooks Deep Dive"}},
			}},
		}},
	}

	books := flattenSection(sec, "en", "English", "")

	require.Len(t, books, 1)
	assert.Equal(t, "JavaScript", books[0].Category, "depth-3 entries attribute to the top-level category")
	assert.Equal(t, "Hooks", books[0].Subcategory, "subcategory names the section the entry lives in")
}

func TestFlattenSectionDocumentOrder(t *testing.T) {
	sec := Section{
		Section: "C",
		Entries: []Entry{{URL: "direct", Title: "Direct"}},
		Subsections: []Section{
			{Section: "Embedded", Entries: []Entry{{URL: "sub1", Title: "Sub One"}}},
			{Section: "Kernels", Entries: []Entry{{URL: "sub2", Title: "Sub Two"}}},
		},
	}

	books := flattenSection(sec, "en", "English", "")

	require.Len(t, books, 3)
	assert.Equal(t, []string{"direct", "sub1", "sub2"}, []string{books[0].URL, books[1].URL, books[2].URL})
}

func TestFlattenTree(t *testing.T) {
	tree := &Tree{
		Type: "root",
		Children: []TreeNode{
			{Type: "other"},
			{Type: "books", Children: []LanguageNode{
				{
					Language: LanguageInfo{Code: "en", Name: "English"},
					Sections: []Section{
						{Section: "Go", Entries: []Entry{{URL: "g1", Title: "Go One"}}},
					},
				},
				{
					// Missing language info falls back to the unknown locale.
					Sections: []Section{
						{Section: "Misc", Entries: []Entry{{URL: "m1", Title: "Misc One"}}},
					},
				},
			}},
		},
	}

	books := Flatten(tree)

	require.Len(t, books, 2)
	assert.Equal(t, "en", books[0].LanguageCode)
	assert.Equal(t, "unknown", books[1].LanguageCode)
	assert.Equal(t, "Unknown", books[1].LanguageName)
}

func TestFlattenEmptyTree(t *testing.T) {
	assert.Empty(t, Flatten(&Tree{Type: "root"}))
	assert.Empty(t, Flatten(&Tree{Type: "root", Children: []TreeNode{{Type: "books"}}}))
}
