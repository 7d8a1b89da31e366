package list_user_products

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
)

// Scope selects which of a user's products to list.
type Scope string

const (
	ScopeBought Scope = "bought"
	ScopeInSale Scope = "in_sale"
	ScopeInCart Scope = "in_cart"
	ScopeSold   Scope = "sold"
)

// ErrUnknownScope is returned for a scope outside the four above.
var ErrUnknownScope = errors.New("unknown product scope")

// Request names the user and the scope to list.
type Request struct {
	UserID int64
	Scope  Scope
}

// Query handles the per-user product listings of the account pages.
type Query struct {
	store contracts.LifecycleStore
}

// NewQuery creates a new user products query.
func NewQuery(store contracts.LifecycleStore) *Query {
	return &Query{
		store: store,
	}
}

// Execute lists the user's products in the requested scope, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.ProductView, error) {
	switch req.Scope {
	case ScopeBought:
		return q.store.BoughtByUser(ctx, req.UserID)
	case ScopeInSale:
		return q.store.InSaleByUser(ctx, req.UserID)
	case ScopeInCart:
		return q.store.InCartByUser(ctx, req.UserID)
	case ScopeSold:
		return q.store.SoldByUser(ctx, req.UserID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScope, req.Scope)
	}
}
