package get_product

import (
	"context"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID int64
}

// Query handles the get product query use case.
type Query struct {
	store contracts.LifecycleStore
}

// NewQuery creates a new get product query.
func NewQuery(store contracts.LifecycleStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute retrieves a product with its seller.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.ProductView, error) {
	if req.ProductID <= 0 {
		return nil, domain.ErrProductNotFound
	}
	return q.store.ByID(ctx, req.ProductID)
}

// Detail retrieves a product with its category and seller contact.
func (q *Query) Detail(ctx context.Context, req *Request) (*domain.ProductDetail, error) {
	if req.ProductID <= 0 {
		return nil, domain.ErrProductNotFound
	}
	return q.store.ByIDWithCategory(ctx, req.ProductID)
}
