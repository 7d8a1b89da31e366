package contracts

import (
	"context"

	"github.com/light-bringer/market-service/internal/app/product/domain"
)

// ProductRepository persists product listings.
type ProductRepository interface {
	// Insert stores a new product and returns its assigned id.
	Insert(ctx context.Context, product *domain.Product) (int64, error)

	// Delete removes a product unconditionally. Ownership is checked by the
	// caller; a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}
