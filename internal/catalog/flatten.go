package catalog

// Flatten walks every language partition of the tree and emits all entries
// as normalized Books, in document order.
func Flatten(tree *Tree) []Book {
	var books []Book
	for _, lang := range tree.languages() {
		code := lang.Language.Code
		if code == "" {
			code = "unknown"
		}
		name := lang.Language.Name
		if name == "" {
			name = "Unknown"
		}
		for _, sec := range lang.Sections {
			books = append(books, flattenSection(sec, code, name, "")...)
		}
	}
	return books
}

// flattenSection emits the section's direct entries, then recurses into its
// subsections depth-first. parentCategory is the already-resolved top-level
// category; it stays fixed however deep the nesting goes, while Subcategory
// always names the section an entry directly lives in. The result is a
// one-level-deep subcategory model, not a full path.
func flattenSection(sec Section, langCode, langName, parentCategory string) []Book {
	category := parentCategory
	if category == "" {
		category = sec.Section
	}

	var books []Book
	for _, e := range sec.Entries {
		b := Book{
			URL:          e.URL,
			Title:        e.Title,
			Author:       e.Author,
			Notes:        e.Notes,
			Category:     category,
			LanguageCode: langCode,
			LanguageName: langName,
		}
		if parentCategory != "" {
			b.Subcategory = sec.Section
		}
		books = append(books, b)
	}

	for _, sub := range sec.Subsections {
		books = append(books, flattenSection(sub, langCode, langName, category)...)
	}
	return books
}

func (t *Tree) languages() []LanguageNode {
	for _, child := range t.Children {
		if child.Type == "books" {
			return child.Children
		}
	}
	return nil
}
