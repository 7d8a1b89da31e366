package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/app/product/statements"
	"github.com/light-bringer/market-service/internal/models/m_product"
	"github.com/light-bringer/market-service/internal/pkg/clock"
	"github.com/light-bringer/market-service/internal/pkg/query"
)

// LifecycleStoreImpl implements LifecycleStore for Spanner.
type LifecycleStoreImpl struct {
	client *spanner.Client
	clock  clock.Clock
}

// NewLifecycleStore creates a new LifecycleStore. clk drives the bought window.
func NewLifecycleStore(client *spanner.Client, clk clock.Clock) contracts.LifecycleStore {
	return &LifecycleStoreImpl{
		client: client,
		clock:  clk,
	}
}

// BoughtByUser returns the user's purchases still inside the bought window.
func (s *LifecycleStoreImpl) BoughtByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error) {
	since := domain.BoughtSince(s.clock.Now())
	return s.list(ctx, "bought", statements.BoughtByUser(query.Spanner, userID, since))
}

// InSaleByUser returns the user's for-sale products.
func (s *LifecycleStoreImpl) InSaleByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error) {
	return s.list(ctx, "in sale", statements.InSaleByUser(query.Spanner, userID))
}

// InCartByUser returns the user's products held by a cart.
func (s *LifecycleStoreImpl) InCartByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error) {
	return s.list(ctx, "in cart", statements.InCartByUser(query.Spanner, userID))
}

// SoldByUser returns the user's sold products.
func (s *LifecycleStoreImpl) SoldByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error) {
	return s.list(ctx, "sold", statements.SoldByUser(query.Spanner, userID))
}

// Latest returns the newest products.
func (s *LifecycleStoreImpl) Latest(ctx context.Context, limit int) ([]*domain.ProductView, error) {
	return s.list(ctx, "latest", statements.Latest(query.Spanner, limit))
}

func (s *LifecycleStoreImpl) list(ctx context.Context, scope string, stmt query.Statement) ([]*domain.ProductView, error) {
	views, err := queryViews(ctx, s.client.Single(), stmt.Spanner())
	if err != nil {
		return nil, fmt.Errorf("failed to list %s products: %w", scope, err)
	}
	return views, nil
}

// ByID retrieves a product with its seller.
func (s *LifecycleStoreImpl) ByID(ctx context.Context, id int64) (*domain.ProductView, error) {
	iter := s.client.Single().Query(ctx, statements.ByID(query.Spanner, id).Spanner())
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	return scanView(row)
}

// ByIDWithCategory retrieves the detail view of a product.
func (s *LifecycleStoreImpl) ByIDWithCategory(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	iter := s.client.Single().Query(ctx, statements.ByIDWithCategory(query.Spanner, id).Spanner())
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product detail: %w", err)
	}

	var data m_product.Data
	var categoryTitle, categoryLogo spanner.NullString
	var pseudo, address, email, phone spanner.NullString
	var rating spanner.NullFloat64

	dest := append(productPointers(&data),
		&categoryTitle, &categoryLogo,
		&pseudo, &address, &email, &phone, &rating,
	)
	if err := row.Columns(dest...); err != nil {
		return nil, fmt.Errorf("failed to scan product detail: %w", err)
	}

	product, err := dataToDomain(&data)
	if err != nil {
		return nil, err
	}

	return &domain.ProductDetail{
		Product: *product,
		Category: domain.Category{
			Title: categoryTitle.StringVal,
			Logo:  categoryLogo.StringVal,
		},
		Seller: domain.SellerContact{
			Pseudo:  pseudo.StringVal,
			Address: address.StringVal,
			Email:   email.StringVal,
			Phone:   phone.StringVal,
			Rating:  rating.Float64,
		},
	}, nil
}
