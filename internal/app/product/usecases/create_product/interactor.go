package create_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/pkg/clock"
)

// Request contains the data needed to list a product for sale.
type Request struct {
	Title       string
	Description string
	Price       int64
	Photos      []string
	OwnerID     int64
	CategoryID  int64
	Room        string
	Material    string
	Condition   string
	Info        string
}

// Interactor handles the create product use case.
type Interactor struct {
	repo  contracts.ProductRepository
	clock clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(repo contracts.ProductRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		repo:  repo,
		clock: clock,
	}
}

// Execute validates the submission and stores a new for-sale product.
// Invalid submissions return a *domain.ValidationError naming every bad field.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	// 1. Build the domain product; validation happens here
	product, err := domain.NewProduct(domain.NewProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Photos:      req.Photos,
		OwnerID:     req.OwnerID,
		CategoryID:  req.CategoryID,
		Room:        req.Room,
		Material:    req.Material,
		Condition:   req.Condition,
		Info:        req.Info,
	}, i.clock.Now())
	if err != nil {
		return 0, err
	}

	// 2. Persist; the store assigns the id
	id, err := i.repo.Insert(ctx, product)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	return id, nil
}
