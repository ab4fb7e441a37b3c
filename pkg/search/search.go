// Package search matches elements by name. Queries are unstructured
// text; every whitespace-separated term must appear in the element
// name for it to match.
package search

import (
	"strings"

	"github.com/01DesignX/alva/pkg/models"
)

// Matches reports whether name satisfies the query. Matching is
// case-insensitive; an empty query matches everything.
func Matches(query, name string) bool {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return true
	}
	lowered := strings.ToLower(name)
	for _, term := range terms {
		if !strings.Contains(lowered, term) {
			return false
		}
	}
	return true
}

// FindAll returns the elements under root whose names match the query,
// in depth-first document order. Root itself is included when it
// matches.
func FindAll(root *models.Element, query string) []*models.Element {
	if root == nil {
		return nil
	}
	var out []*models.Element
	if Matches(query, root.Name()) {
		out = append(out, root)
	}
	for _, e := range root.Descendants() {
		if Matches(query, e.Name()) {
			out = append(out, e)
		}
	}
	return out
}
