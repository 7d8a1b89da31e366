package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/app/product/statements"
	"github.com/light-bringer/market-service/internal/pkg/query"
)

// ReadModelImpl implements CatalogReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new catalog ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.CatalogReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// FetchPage counts and fetches one catalog page inside a single read-only
// snapshot, so the page count and the rows agree.
func (rm *ReadModelImpl) FetchPage(ctx context.Context, terms domain.SearchTerms, pageSize int, sort domain.Sort) (*contracts.CatalogPage, error) {
	pageSize = domain.NormalizePageSize(pageSize)

	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	total, err := queryInt64(ctx, txn, statements.CatalogCount(query.Spanner, terms).Spanner())
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}

	products, err := queryViews(ctx, txn, statements.CatalogPage(query.Spanner, terms, pageSize, sort).Spanner())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog page: %w", err)
	}

	return &contracts.CatalogPage{
		Products:    products,
		CurrentPage: terms.Page(),
		PagesCount:  domain.PagesCount(total, pageSize),
	}, nil
}
