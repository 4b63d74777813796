package generator

import (
	"regexp"
	"strings"
)

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL/DOM-safe identifier from a display name:
// lowercased, whitespace runs become single hyphens, everything outside
// [a-z0-9-] is dropped, runs of hyphens collapse, edge hyphens are
// trimmed. It is a pure function of its input so identical names always
// produce identical ids across regenerations.
//
// Two different names may slugify to the same value; the result is not
// deduplicated. Callers that need uniqueness (the store, the importer)
// assign explicit ids, and generated markup resolves duplicate DOM ids
// last-one-wins.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
