package latest_products

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
)

// DefaultLimit is the number of products on the home page teaser.
const DefaultLimit = 8

// ErrInvalidLimit is returned by ParseLimit for non-integer input.
var ErrInvalidLimit = errors.New("invalid limit")

// Request contains the number of products to return.
// A nil Limit uses DefaultLimit; a Limit <= 0 returns every product.
type Request struct {
	Limit *int
}

// ParseLimit reads an optional limit parameter. Empty input means no
// limit was given and returns nil.
func ParseLimit(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return nil, ErrInvalidLimit
	}
	return &limit, nil
}

// Query handles the latest products listing.
type Query struct {
	store contracts.LifecycleStore
}

// NewQuery creates a new latest products query.
func NewQuery(store contracts.LifecycleStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute returns the most recently added products of all sellers.
// Positive limits are capped at domain.MaxPageSize.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.ProductView, error) {
	limit := DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	switch {
	case limit <= 0:
		limit = 0
	case limit > domain.MaxPageSize:
		limit = domain.MaxPageSize
	}
	return q.store.Latest(ctx, limit)
}
