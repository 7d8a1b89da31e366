package domain

import "github.com/light-bringer/market-service/internal/pkg/query"

// Catalog visibility columns.
const (
	CartColumn   = "p.cart_id"
	StatusColumn = "p.status"
)

// ListedConditions is the public catalog visibility rule: the product is
// for sale and not held by any cart, validated or not.
func ListedConditions() []query.Condition {
	return []query.Condition{
		query.Eq(StatusColumn, string(StatusForSale)),
		query.IsNull(CartColumn),
	}
}

// CatalogConditions combines the search predicate with the visibility rule.
// Counting and fetching a catalog page both filter with exactly this list.
func CatalogConditions(terms SearchTerms) []query.Condition {
	return append(terms.Predicate(), ListedConditions()...)
}
