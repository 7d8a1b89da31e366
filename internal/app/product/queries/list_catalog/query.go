package list_catalog

import (
	"context"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
)

// Request carries the raw catalog parameters of a page request.
type Request struct {
	Page      string
	Search    string
	Category  string
	Sort      string
	Direction string
}

// Query handles the public catalog listing.
type Query struct {
	readModel contracts.CatalogReadModel
	pageSize  int
}

// NewQuery creates a new catalog query serving pages of pageSize products.
func NewQuery(readModel contracts.CatalogReadModel, pageSize int) *Query {
	return &Query{
		readModel: readModel,
		pageSize:  domain.NormalizePageSize(pageSize),
	}
}

// Execute returns the requested catalog page. A page past the last one is
// re-fetched as the last page; an empty catalog yields an empty page 1.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.CatalogPage, error) {
	sort, err := domain.ParseSort(req.Sort, req.Direction)
	if err != nil {
		return nil, err
	}

	terms := domain.NewSearchTerms(req.Page, req.Search, req.Category)

	page, err := q.readModel.FetchPage(ctx, terms, q.pageSize, sort)
	if err != nil {
		return nil, err
	}

	if !page.OutOfRange() {
		return page, nil
	}

	last := terms.WithPage(page.PagesCount)
	if last.Page() == terms.Page() {
		return page, nil
	}
	return q.readModel.FetchPage(ctx, last, q.pageSize, sort)
}
