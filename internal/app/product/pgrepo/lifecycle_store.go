package pgrepo

import (
	"context"
	"fmt"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/app/product/statements"
	"github.com/light-bringer/market-service/internal/pkg/clock"
	"github.com/light-bringer/market-service/internal/pkg/pgdb"
	"github.com/light-bringer/market-service/internal/pkg/query"
)

// LifecycleStore implements contracts.LifecycleStore for PostgreSQL.
type LifecycleStore struct {
	db    *pgdb.DB
	clock clock.Clock
}

// NewLifecycleStore creates a new LifecycleStore. clk drives the bought window.
func NewLifecycleStore(db *pgdb.DB, clk clock.Clock) contracts.LifecycleStore {
	return &LifecycleStore{db: db, clock: clk}
}

func (s *LifecycleStore) BoughtByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error) {
	since := domain.BoughtSince(s.clock.Now())
	return s.list(ctx, "bought", statements.BoughtByUser(query.Postgres, userID, since))
}

func (s *LifecycleStore) InSaleByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error) {
	return s.list(ctx, "in sale", statements.InSaleByUser(query.Postgres, userID))
}

func (s *LifecycleStore) InCartByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error) {
	return s.list(ctx, "in cart", statements.InCartByUser(query.Postgres, userID))
}

func (s *LifecycleStore) SoldByUser(ctx context.Context, userID int64) ([]*domain.ProductView, error) {
	return s.list(ctx, "sold", statements.SoldByUser(query.Postgres, userID))
}

func (s *LifecycleStore) Latest(ctx context.Context, limit int) ([]*domain.ProductView, error) {
	return s.list(ctx, "latest", statements.Latest(query.Postgres, limit))
}

func (s *LifecycleStore) list(ctx context.Context, scope string, stmt query.Statement) ([]*domain.ProductView, error) {
	views, err := queryViews(ctx, s.db, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s products: %w", scope, err)
	}
	return views, nil
}

// ByID retrieves a product with its seller.
func (s *LifecycleStore) ByID(ctx context.Context, id int64) (*domain.ProductView, error) {
	stmt := statements.ByID(query.Postgres, id)

	view, err := scanView(s.db.QueryRow(ctx, stmt.SQL, stmt.Args...))
	if pgdb.IsNoRows(err) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product: %w", err)
	}
	return view, nil
}

// ByIDWithCategory retrieves the detail view of a product.
func (s *LifecycleStore) ByIDWithCategory(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	stmt := statements.ByIDWithCategory(query.Postgres, id)

	var data productRow
	var categoryTitle, categoryLogo *string
	var pseudo, address, email, phone *string
	var rating *float64

	dest := append(data.pointers(),
		&categoryTitle, &categoryLogo,
		&pseudo, &address, &email, &phone, &rating,
	)
	err := s.db.QueryRow(ctx, stmt.SQL, stmt.Args...).Scan(dest...)
	if pgdb.IsNoRows(err) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product detail: %w", err)
	}

	product, err := data.toDomain()
	if err != nil {
		return nil, err
	}

	return &domain.ProductDetail{
		Product: *product,
		Category: domain.Category{
			Title: deref(categoryTitle),
			Logo:  deref(categoryLogo),
		},
		Seller: domain.SellerContact{
			Pseudo:  deref(pseudo),
			Address: deref(address),
			Email:   deref(email),
			Phone:   deref(phone),
			Rating:  deref(rating),
		},
	}, nil
}
