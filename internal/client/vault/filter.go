package vault

import (
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
)

// Filters selects entries. An empty Search matches everything; an empty
// Category means no category filter.
type Filters struct {
	Search   string
	Category string
}

// FilterOption sets one filter key, leaving the others untouched.
type FilterOption func(*Filters)

func WithSearch(s string) FilterOption {
	return func(f *Filters) { f.Search = s }
}

// WithCategory filters by exact category. "" clears the filter.
func WithCategory(c string) FilterOption {
	return func(f *Filters) { f.Category = c }
}

func WithoutCategory() FilterOption {
	return WithCategory("")
}

// Match reports whether e passes f. The search is a case-insensitive
// substring test against name, username, email and url.
func Match(f Filters, e models.Entry) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}

	needle := strings.ToLower(f.Search)
	for _, hay := range [...]string{e.Name, e.Username, e.Email, e.URL} {
		if hay != "" && strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// Filter returns the entries of src that pass f, preserving order.
func Filter(src []models.Entry, f Filters) []models.Entry {
	out := make([]models.Entry, 0, len(src))
	for _, e := range src {
		if Match(f, e) {
			out = append(out, e)
		}
	}
	return out
}
