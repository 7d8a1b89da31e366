package domain

import (
	"errors"
	"strconv"
	"strings"

	"github.com/light-bringer/market-service/internal/pkg/query"
)

// Catalog columns the search predicate filters on.
const (
	SearchColumn   = "p.title"
	CategoryColumn = "p.category_item_id"
)

// SearchTerms is an immutable catalog query: free-text search, category
// filter and requested page. The zero value asks for page 1 of everything.
type SearchTerms struct {
	search     string
	categoryID int64
	page       int
}

// MaxPage is the largest page whose row offset fits in an int at any
// page size. Larger pages are clamped to it; they are past the end of any
// catalog, so the caller's retry lands on the last page either way.
const MaxPage = int(^uint(0)>>1) / MaxPageSize

// NewSearchTerms normalizes untrusted request values.
// A page that is not a positive integer becomes 1, one above MaxPage
// becomes MaxPage; a category that is not a positive 64-bit integer is
// ignored; a blank search is ignored.
func NewSearchTerms(rawPage, search, rawCategory string) SearchTerms {
	return SearchTerms{
		search:     strings.TrimSpace(search),
		categoryID: parseCategory(rawCategory),
		page:       parsePage(rawPage),
	}
}

func parsePage(raw string) int {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 0)
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return MaxPage
	}
	if err != nil {
		return 1
	}
	return normalizePage(int(n))
}

// parseCategory returns the positive integer in raw, or 0.
func parseCategory(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func normalizePage(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	}
	return page
}

// Page returns the requested page, always >= 1.
func (s SearchTerms) Page() int {
	return normalizePage(s.page)
}

// Search returns the free-text search, empty when unset.
func (s SearchTerms) Search() string {
	return s.search
}

// CategoryID returns the category filter and whether it is set.
func (s SearchTerms) CategoryID() (int64, bool) {
	return s.categoryID, s.categoryID > 0
}

// WithPage returns a copy asking for another page.
// Non-positive pages normalize to 1.
func (s SearchTerms) WithPage(page int) SearchTerms {
	s.page = normalizePage(page)
	return s
}

// Predicate translates the terms into filter conditions joined with AND.
// It is empty when neither search nor category is set.
func (s SearchTerms) Predicate() []query.Condition {
	conditions := make([]query.Condition, 0, 2)
	if s.search != "" {
		conditions = append(conditions, query.ContainsFold(SearchColumn, s.search))
	}
	if id, ok := s.CategoryID(); ok {
		conditions = append(conditions, query.Eq(CategoryColumn, id))
	}
	return conditions
}
