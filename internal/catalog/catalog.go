// Package catalog normalizes the upstream free-programming-books tree into
// a flat, queryable book list.
package catalog

// Book is one normalized record flattened out of the upstream catalog.
// URL is the stable identifier other stores (bookmarks, likes) key by.
type Book struct {
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Author       string   `json:"author,omitempty"`
	Notes        []string `json:"notes,omitempty"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory,omitempty"`
	LanguageCode string   `json:"languageCode"`
	LanguageName string   `json:"languageName"`
}

// Tree mirrors the upstream fpb.json document.
type Tree struct {
	Type     string     `json:"type"`
	Children []TreeNode `json:"children"`
}

// TreeNode is a typed child of the root; the catalog lives under the node
// with type "books".
type TreeNode struct {
	Type     string         `json:"type"`
	Children []LanguageNode `json:"children"`
}

// LanguageNode groups the sections written in one natural language.
type LanguageNode struct {
	Language LanguageInfo `json:"language"`
	Sections []Section    `json:"sections"`
}

// LanguageInfo identifies the natural language of a catalog partition.
type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Section is a named grouping of entries, possibly nested.
type Section struct {
	Section     string    `json:"section"`
	Entries     []Entry   `json:"entries"`
	Subsections []Section `json:"subsections"`
}

// Entry is one raw book entry as published upstream.
type Entry struct {
	URL    string   `json:"url"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Notes  []string `json:"notes"`
}

// CategoryCount is a category roll-up over the flattened catalog.
type CategoryCount struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// LanguageCount is a language roll-up over the flattened catalog.
type LanguageCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
