package delete_product

import (
	"context"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
)

// Request contains the product ID to delete.
type Request struct {
	ProductID int64
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo contracts.ProductRepository
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(repo contracts.ProductRepository) *Interactor {
	return &Interactor{
		repo: repo,
	}
}

// Execute removes the product. Deleting an unknown id succeeds.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.repo.Delete(ctx, req.ProductID)
}
