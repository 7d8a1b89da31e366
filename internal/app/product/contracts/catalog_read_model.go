package contracts

import (
	"context"

	"github.com/light-bringer/market-service/internal/app/product/domain"
)

// CatalogPage is one page of the public catalog.
type CatalogPage struct {
	Products    []*domain.ProductView
	CurrentPage int
	PagesCount  int
}

// OutOfRange reports whether the requested page lies past the last page.
// Callers re-fetch with PagesCount when it does.
func (p *CatalogPage) OutOfRange() bool {
	return p.CurrentPage > p.PagesCount
}

// CatalogReadModel answers catalog page queries.
type CatalogReadModel interface {
	// FetchPage counts the listed products matching terms and returns the
	// requested page of them. Count and rows share one visibility rule
	// (for sale, not in a cart). An out-of-range page yields no products;
	// the engine never substitutes another page.
	FetchPage(ctx context.Context, terms domain.SearchTerms, pageSize int, sort domain.Sort) (*CatalogPage, error)
}
