package contracts

import (
	"context"

	"github.com/light-bringer/market-service/internal/app/product/domain"
)

// LifecycleStore reads products by their position in the sale lifecycle.
// Multi-row reads are ordered by product id, newest first.
type LifecycleStore interface {
	// BoughtByUser returns products in the user's validated carts whose
	// validation is less than domain.BoughtWindow old.
	BoughtByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error)

	// InSaleByUser returns the user's for-sale products, cart-linked ones included.
	InSaleByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error)

	// InCartByUser returns the user's products currently reserved by any cart.
	InCartByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error)

	// SoldByUser returns the user's sold products.
	SoldByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error)

	// Latest returns the most recent products of every seller.
	// limit <= 0 returns all of them.
	Latest(ctx context.Context, limit int) ([]*domain.ProductView, error)

	// ByID returns a product with its seller, or domain.ErrProductNotFound.
	ByID(ctx context.Context, id int64) (*domain.ProductView, error)

	// ByIDWithCategory returns the detail view, or domain.ErrProductNotFound.
	ByIDWithCategory(ctx context.Context, id int64) (*domain.ProductDetail, error)
}
