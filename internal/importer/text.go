// Package importer parses bulk menu text into categories, for
// restaurateurs who paste a whole menu instead of entering items one by
// one.
package importer

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/menusmith/menusmith/internal/generator"
	"github.com/menusmith/menusmith/internal/menu"
)

// itemRegex matches one menu line: "- Name: Description = Price".
// Description and price are both optional.
var itemRegex = regexp.MustCompile(`^[-*]\s+([^:=]+?)(?::\s*(.*?))?(?:\s*=\s*(\S+))?\s*$`)

// ParseText parses bulk menu text. A non-list line starts a new
// category; list lines become items of the current category. Items
// before any category heading go into an implicit "Menu" category.
// The parser is lenient: malformed lines are skipped, never fatal.
func ParseText(text string) []menu.Category {
	var categories []menu.Category
	var current *menu.Category

	flush := func() {
		if current != nil && len(current.Items) > 0 {
			categories = append(categories, *current)
		}
		current = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if line[0] != '-' && line[0] != '*' {
			// A heading line.
			flush()
			name := strings.TrimSpace(strings.TrimLeft(line, "# "))
			if name == "" {
				continue
			}
			current = &menu.Category{
				ID:   stableID(name),
				Name: name,
			}
			continue
		}

		m := itemRegex.FindStringSubmatch(line)
		if m == nil {
			// A list marker with nothing usable after it.
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if current == nil {
			current = &menu.Category{ID: stableID("Menu"), Name: "Menu"}
		}
		current.Items = append(current.Items, menu.Item{
			ID:          stableID(name),
			Name:        name,
			Description: strings.TrimSpace(m[2]),
			Price:       strings.TrimSpace(m[3]),
		})
	}
	flush()

	return categories
}

// stableID derives an id from a name, so re-importing the same text
// yields the same category and item ids. Names that slugify to nothing
// fall back to a uuid.
func stableID(name string) string {
	if slug := generator.Slugify(name); slug != "" {
		return slug
	}
	return uuid.New().String()
}
