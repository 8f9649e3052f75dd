package mindbooks

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/crayonzgrim/free-coders-books/internal/slug"
)

// parseState tracks where a line falls relative to the current category's
// table.
type parseState int

const (
	stateOutsideCategory parseState = iota
	stateInCategory
	stateTableHeader
	stateTableBody
)

var (
	headingRe    = regexp.MustCompile(`^##\s+(.+)$`)
	ratingLinkRe = regexp.MustCompile(`\[(\d+\.?\d*)\]\((https?://[^)]+)\)`)
)

// ParseReadme runs a single line-oriented pass over the README and returns
// the categories that produced at least one valid book row. Malformed rows
// are dropped where they stand; parsing never fails.
func ParseReadme(markdown string) []Category {
	var (
		categories []Category
		current    *Category
		state      = stateOutsideCategory
	)

	flush := func() {
		if current != nil && len(current.Books) > 0 {
			categories = append(categories, *current)
		}
	}

	for _, line := range strings.Split(markdown, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			name := strings.TrimSpace(m[1])
			if isStructuralHeading(name) {
				current = nil
				state = stateOutsideCategory
				continue
			}
			current = &Category{Name: name, Slug: slug.Make(name)}
			state = stateInCategory
			continue
		}

		if current == nil {
			continue
		}

		switch state {
		case stateInCategory:
			if strings.Contains(line, "|---") {
				state = stateTableBody
			} else if strings.Contains(line, "| Name |") {
				state = stateTableHeader
			}
		case stateTableHeader:
			switch {
			case strings.Contains(line, "|---"):
				state = stateTableBody
			case !strings.HasPrefix(line, "|"):
				state = stateInCategory
			}
		case stateTableBody:
			switch {
			case strings.Contains(line, "|---"):
				// stray separator, stay in the body
			case strings.HasPrefix(line, "|"):
				if book, ok := parseTableRow(line, current.Name, current.Slug); ok {
					current.Books = append(current.Books, book)
				}
			default:
				// blank or prose line ends the table
				state = stateInCategory
			}
		}
	}

	flush()
	return categories
}

// isStructuralHeading filters headings that organize the document rather
// than name a category.
func isStructuralHeading(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "table of contents") || strings.Contains(lower, "books")
}

// parseTableRow extracts one book from a pipe-delimited row. Rows with
// fewer than four cells, a rating cell that is not a [rating](url) link,
// or an unparseable year contribute nothing.
func parseTableRow(row, category, categorySlug string) (Book, bool) {
	var cells []string
	for _, cell := range strings.Split(row, "|") {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	if len(cells) < 4 {
		return Book{}, false
	}

	m := ratingLinkRe.FindStringSubmatch(cells[2])
	if m == nil {
		return Book{}, false
	}
	rating, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Book{}, false
	}
	year, err := strconv.Atoi(cells[3])
	if err != nil {
		return Book{}, false
	}

	return Book{
		Title:           cells[0],
		Author:          cells[1],
		GoodreadsRating: rating,
		GoodreadsURL:    m[2],
		YearPublished:   year,
		Category:        category,
		CategorySlug:    categorySlug,
	}, true
}
